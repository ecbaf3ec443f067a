package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flippy/internal/core"
	"github.com/vovakirdan/flippy/internal/games/flippy"
	"github.com/vovakirdan/flippy/internal/platform/tui"
	"github.com/vovakirdan/flippy/internal/registry"
	"github.com/vovakirdan/flippy/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMoves      int
)

var playCmd = &cobra.Command{
	Use:   "play [shape]",
	Short: "Play a shape",
	Long: `Start playing the specified shape, or pick one from the menu.

Controls:
  Mouse click      - Flip toward the clicked point
  Arrows/WASD/HJKL - Move the cursor
  Space/Enter      - Flip toward the cursor
  N                - Give up and start a new level
  P/Esc            - Pause (B returns to the menu while paused)
  R                - Restart the run
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 2 moves, looser matching
  normal - 3 moves
  hard   - 5 moves, move count grows faster
  fixed  - Config's move count, never grows

Examples:
  flippy play square
  flippy play pentagon --moves 6
  flippy play hexagon --difficulty hard
  flippy play triangle --config ./my-flippy.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom flippy config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagMoves, "moves", 0, "Moves for the first level (0 = from config)")
}

// applyGameSettings passes CLI flags to the game package before games are created.
func applyGameSettings() {
	flippy.SetConfigPath(flagConfig)
	flippy.SetDifficultyPreset(flagDifficulty)
	flippy.SetStartMoves(flagMoves)
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	applyGameSettings()

	if len(args) == 0 {
		runMenuLoop()
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown shape %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'flippy list' to see available shapes.")
		os.Exit(1)
	}

	logger, closeLog := openLogger(flagLogPath)
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	runErr := tui.Run(game, store, logger, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game exited", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
