// pacman is a terminal maze-chase game.
//
// Usage:
//
//	pacman play             - Start the game (level picker)
//	pacman play --level 2   - Start directly at a level
//	pacman levels           - List available levels
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "pacman",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man for your terminal",
	Long: `A terminal maze-chase game: eat every pellet while dodging
the ghosts, grab power pellets to turn the tables.

Available commands:
  play     - Start the game
  levels   - List available levels

Examples:
  pacman play
  pacman play --level 2 --difficulty hard
  pacman play --config ./my-pacman.yaml
  pacman levels`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
}
