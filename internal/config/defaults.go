package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the
// final fallback if the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Speeds: SpeedConfig{
			Player:     0.10,
			Ghost:      0.08,
			Frightened: 0.05,
			Eaten:      0.20,
		},
		Timings: TimingConfig{
			ScatterTicks:    420,
			ChaseTicks:      1200,
			FrightenedTicks: 300,
			BlinkTicks:      120,
		},
		Scoring: ScoringConfig{
			Pellet:      10,
			PowerPellet: 50,
			Ghost:       200,
		},
		Gameplay: GameplayConfig{
			Lives:             3,
			LevelSpeedScaling: true,
		},
	}
}
