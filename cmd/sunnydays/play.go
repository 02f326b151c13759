package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sunny-days/internal/core"
	"sunny-days/internal/platform/tui"
	"sunny-days/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run in the current terminal.

Controls:
  WASD/Arrows - Move
  E/Enter     - Interact (talk, open, use the door)
  I           - Inventory
  Q           - Character sheet
  Esc/Ctrl+C  - Quit

In battle:
  1 - Fight   2 - Inventory   3 - Run

Examples:
  sunnydays play
  sunnydays play --seed 42
  sunnydays play --config ./my-rules.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size for the screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := loadGameConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(store, cfg, game)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
