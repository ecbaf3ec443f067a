// flippy is a terminal polygon puzzle: flip the filled shape across its own
// edges until it covers the outlined target.
//
// Usage:
//
//	flippy list              - List available shapes
//	flippy play [shape]      - Play a shape (menu if omitted)
//	flippy menu              - Start the shape picker menu
//	flippy serve             - Start SSH server for remote play
//	flippy scores <shape>    - Show high scores for a shape
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible levels
//	--db <path>     - Set database path (default: ~/.flippy/scores.db)
//	--log <path>    - Set log file path (default: ~/.flippy/flippy.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/flippy/internal/games/flippy"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flippy",
	Short: "Flippy - flip polygons onto their outlines in your terminal",
	Long: `Flippy is a terminal puzzle. Each level shows a filled shape and an
outline. Click a point (or aim the cursor and press Space) to flip the shape
across the edge facing that point. Match the outline within the move count
to score a full point.

Available commands:
  list     - Show all available shapes
  play     - Play a shape directly
  menu     - Interactive shape picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  flippy list
  flippy play square
  flippy play hexagon --difficulty hard
  flippy serve --ssh :2222
  flippy scores pentagon`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flippy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.flippy/flippy.log", "Path to log file for interactive play")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
