package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flippy/internal/games/flippy"
	"github.com/vovakirdan/flippy/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available shapes",
	Long:  `Shows every playable shape with its vertex count.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	if len(registry.List()) == 0 {
		fmt.Println("No shapes available.")
		return
	}

	fmt.Println("Available shapes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range flippy.Shapes {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Vertices", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "--------", "-----")

	for _, s := range flippy.Shapes {
		if !registry.Exists(s.ID) {
			continue
		}
		fmt.Printf("  %-*s  %-8d  %s\n", maxIDLen, s.ID, s.Vertices, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'flippy play <id>' to play a shape.")
}
