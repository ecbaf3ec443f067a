package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flippy/internal/registry"
	"github.com/vovakirdan/flippy/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <shape>",
	Short: "Show high scores for a shape",
	Long: `Display the top 10 runs for the specified shape.

A run scores one point per level solved within its move count, and a
fraction of a point for levels that took more moves.

Examples:
  flippy scores triangle
  flippy scores hexagon`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	title, ok := registry.Titles()[gameID]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown shape %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'flippy list' to see available shapes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'flippy play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8.2f  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %.2f  Best level: %d  Runs: %d  Average: %.2f\n",
			stats.HighScore, stats.BestLevel, stats.GamesCount, stats.AvgScore)
	}
}
