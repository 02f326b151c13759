package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sunny-days/internal/platform/tui"
	"sunny-days/internal/storage"
)

var flagClearRuns bool

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse past runs",
	Long: `Show the journal of past runs in a scrollable table.

Examples:
  sunnydays runs
  sunnydays runs --clear
  sunnydays runs --db ./runs.db`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "Delete all journaled runs")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearRuns {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run journal cleared.")
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing runs: %v\n", err)
		os.Exit(1)
	}
}
