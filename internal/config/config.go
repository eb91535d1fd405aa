// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// Config contains all tunable gameplay parameters. Speeds are in cells
// per simulation tick, timings in ticks at the default 60 ticks/second.
type Config struct {
	Speeds   SpeedConfig    `yaml:"speeds"`
	Timings  TimingConfig   `yaml:"timings"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// SpeedConfig defines movement speeds in cells per tick.
type SpeedConfig struct {
	Player     float64 `yaml:"player"`
	Ghost      float64 `yaml:"ghost"`      // Base scatter/chase speed, scaled per level
	Frightened float64 `yaml:"frightened"` // Unscaled; frightened ghosts are slow everywhere
	Eaten      float64 `yaml:"eaten"`      // Unscaled; eyes travel fast
}

// TimingConfig defines ghost mode durations in ticks.
type TimingConfig struct {
	ScatterTicks    int `yaml:"scatter_ticks"`
	ChaseTicks      int `yaml:"chase_ticks"`
	FrightenedTicks int `yaml:"frightened_ticks"`
	BlinkTicks      int `yaml:"blink_ticks"` // Frightened ghosts blink when this much time remains
}

// ScoringConfig defines points awarded per collectible.
type ScoringConfig struct {
	Pellet      int `yaml:"pellet"`
	PowerPellet int `yaml:"power_pellet"`
	Ghost       int `yaml:"ghost"`
}

// GameplayConfig defines overall game rules.
type GameplayConfig struct {
	Lives             int  `yaml:"lives"`
	LevelSpeedScaling bool `yaml:"level_speed_scaling"` // Apply per-level ghost speed multipliers
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)

// ApplyPreset modifies the config based on a difficulty preset.
// "fixed" keeps the config values but disables per-level speed scaling,
// so every level plays at the base ghost speed.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Gameplay.Lives = 5
		cfg.Timings.FrightenedTicks = 420
		cfg.Speeds.Ghost *= 0.85
	case PresetHard:
		cfg.Gameplay.Lives = 2
		cfg.Timings.FrightenedTicks = 180
		cfg.Speeds.Ghost *= 1.15
	case PresetFixed:
		cfg.Gameplay.LevelSpeedScaling = false
	}
}

// ValidPreset reports whether the string names a known preset.
func ValidPreset(s string) bool {
	switch Preset(s) {
	case PresetEasy, PresetNormal, PresetHard, PresetFixed:
		return true
	}
	return false
}
