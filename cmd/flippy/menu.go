package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flippy/internal/platform/tui"
	"github.com/vovakirdan/flippy/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start flippy with a shape picker menu",
	Long: `Start flippy in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a shape.
Leaving a game returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select shape
  Tab          - High scores
  Q            - Quit

Examples:
  flippy menu
  flippy menu --fps 30
  flippy menu --db ./scores.db`,
	Run: func(_ *cobra.Command, _ []string) {
		applyGameSettings()
		runMenuLoop()
	},
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom flippy config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().IntVar(&flagMoves, "moves", 0, "Moves for the first level (0 = from config)")
}

// runMenuLoop alternates between the menu, the scoreboard and games until
// the user quits.
func runMenuLoop() {
	logger, closeLog := openLogger(flagLogPath)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		gameCfg := cfg
		if gameCfg.Seed == 0 {
			gameCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, logger, gameCfg); err != nil {
			logger.Error("game exited", "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
