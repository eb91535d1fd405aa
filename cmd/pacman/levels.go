package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the built-in level roster, or the levels found in a custom
directory when --levels-dir is given.`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of custom level YAML files")
}

func runLevels(cmd *cobra.Command, args []string) {
	roster := levels.Levels
	if flagLevelsDir != "" {
		loader := levels.NewLoader(flagLevelsDir)
		custom, err := loader.LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels from %s: %v\n", flagLevelsDir, err)
			os.Exit(1)
		}
		roster = custom
	}

	if len(roster) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for i := range roster {
		if len(roster[i].ID) > maxIDLen {
			maxIDLen = len(roster[i].ID)
		}
	}

	fmt.Printf("  %-2s  %-*s  %-10s  %-6s  %s\n", "#", maxIDLen, "ID", "Name", "Ghosts", "Difficulty")
	for i := range roster {
		l := &roster[i]
		fmt.Printf("  %-2d  %-*s  %-10s  %-6d  %s\n", i+1, maxIDLen, l.ID, l.Name, l.GhostCount, l.Difficulty)
	}

	fmt.Println()
	fmt.Println("Run 'pacman play --level <#|id>' to play a level.")
}
