// sunnydays is a small single-player dungeon RPG played in the terminal.
//
// Usage:
//
//	sunnydays play           - Start a run locally
//	sunnydays serve          - Start SSH server for remote play
//	sunnydays runs           - Browse the journal of past runs
//	sunnydays mapgen         - Print a generated level as ASCII
//
// Global flags:
//
//	--fps <rate>    - Set idle tick rate (default: 15)
//	--seed <value>  - Set world seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.sunnydays/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sunny-days/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   uint64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sunnydays",
	Short: "Sunny Days - a tiny dungeon RPG in your terminal",
	Long: `Sunny Days is a terminal roguelike-flavored RPG: two generated
rooms, a handful of villagers and monsters, timed snack buffs and one
boss standing between you and the sun.

Available commands:
  play     - Start a run in the current terminal
  serve    - Start SSH server for remote play
  runs     - Browse past runs
  mapgen   - Dump a generated level as ASCII

Examples:
  sunnydays play
  sunnydays play --seed 42
  sunnydays serve --ssh :2222
  sunnydays runs
  sunnydays mapgen --seed 42 --depth 1`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 15, "Idle tick rate (ticks per second)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "World seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sunnydays/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(mapgenCmd)
}

// loadGameConfig resolves the game config, falling back to built-in
// defaults with a warning rather than refusing to start.
func loadGameConfig() config.GameConfig {
	game, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		return config.Default()
	}
	return game
}
