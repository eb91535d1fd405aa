package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlLevel is the on-disk YAML structure for a custom level file.
type yamlLevel struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Difficulty      string   `yaml:"difficulty,omitempty"`
	Ghosts          int      `yaml:"ghosts,omitempty"`
	SpeedMultiplier float64  `yaml:"speed_multiplier,omitempty"`
	Layout          []string `yaml:"layout"`
}

// ParseYAML parses a YAML level definition and validates its layout.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	lvl := Level{
		ID:              yl.ID,
		Name:            yl.Name,
		Difficulty:      yl.Difficulty,
		GhostCount:      yl.Ghosts,
		SpeedMultiplier: yl.SpeedMultiplier,
		Layout:          yl.Layout,
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	if lvl.GhostCount <= 0 {
		lvl.GhostCount = 2
	}
	if lvl.SpeedMultiplier <= 0 {
		lvl.SpeedMultiplier = 1.0
	}

	// Validate the layout eagerly so a broken file fails at load, not
	// at level start.
	if _, err := lvl.Maze(); err != nil {
		return Level{}, err
	}

	return lvl, nil
}

// Loader loads custom levels from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all .yaml/.yml level files.
// Invalid files are skipped. Results are sorted by ID for deterministic
// ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var result []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		result = append(result, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	lvl, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return lvl, nil
}
