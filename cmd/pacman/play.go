package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/audio"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/game"
	"github.com/vovakirdan/tui-pacman/internal/levels"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

var (
	flagLevel      string
	flagLevelsDir  string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start the game. Without --level an interactive level picker opens.

Controls:
  Arrows/WASD - Move
  Enter       - Next level (after clearing)
  P/Esc       - Pause
  R           - Restart (after game over)
  M           - Mute sounds
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More lives, slower ghosts, longer power pellets
  normal - Default rules
  hard   - Fewer lives, faster ghosts, shorter power pellets
  fixed  - Default rules without per-level ghost speed-up

Examples:
  pacman play
  pacman play --level 2
  pacman play --level gauntlet --difficulty hard
  pacman play --levels-dir ./my-levels --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Start level: 1-based number or level ID")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of custom level YAML files")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sounds")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the level picker
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	roster := levels.Levels
	if flagLevelsDir != "" {
		loader := levels.NewLoader(flagLevelsDir)
		custom, err := loader.LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels from %s: %v\n", flagLevelsDir, err)
			os.Exit(1)
		}
		if len(custom) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no level files found in %s\n", flagLevelsDir)
			os.Exit(1)
		}
		roster = custom
		game.SetRoster(custom)
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	if flagLevel != "" {
		start, err := resolveLevel(roster, flagLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'pacman levels' to see available levels.")
			os.Exit(1)
		}
		game.SetStartLevel(start)
	} else {
		// Show the level picker
		result, err := tui.RunMenu(roster, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if result.Quit {
			return
		}
		cfg = result.Config
		game.SetStartLevel(result.LevelIndex + 1)
	}

	sounds := audio.NewEngine()
	if !flagMute {
		if err := sounds.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		}
	}
	defer sounds.Close()

	if runErr := tui.Run(game.New(), sounds, cfg); runErr != nil {
		logger.Error("game exited with error", "error", runErr)
		os.Exit(1)
	}
}

// resolveLevel turns a --level value into a 1-based start index. It
// accepts a number or a level ID.
func resolveLevel(roster []levels.Level, value string) (int, error) {
	if n, err := strconv.Atoi(value); err == nil {
		if n < 1 || n > len(roster) {
			return 0, fmt.Errorf("level %d out of range (1-%d)", n, len(roster))
		}
		return n, nil
	}
	for i := range roster {
		if roster[i].ID == value {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q", value)
}
