package levels

import (
	"os"
	"path/filepath"
	"testing"
)

const validLevelYAML = `
id: custom
name: Custom
difficulty: Medium
ghosts: 2
speed_multiplier: 1.2
layout:
  - "#######"
  - "#P...G#"
  - "#.o.G.#"
  - "#######"
`

func TestParseYAML(t *testing.T) {
	lvl, err := ParseYAML([]byte(validLevelYAML))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if lvl.ID != "custom" || lvl.Name != "Custom" {
		t.Errorf("Unexpected identity: %s/%s", lvl.ID, lvl.Name)
	}
	if lvl.GhostCount != 2 || lvl.SpeedMultiplier != 1.2 {
		t.Errorf("Unexpected tuning: %d ghosts, x%f", lvl.GhostCount, lvl.SpeedMultiplier)
	}
}

func TestParseYAMLDefaults(t *testing.T) {
	lvl, err := ParseYAML([]byte(`
id: bare
layout:
  - "#####"
  - "#P.G#"
  - "#####"
`))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if lvl.Name != "bare" {
		t.Errorf("Expected name to default to the ID, got %q", lvl.Name)
	}
	if lvl.GhostCount != 2 {
		t.Errorf("Expected default ghost count 2, got %d", lvl.GhostCount)
	}
	if lvl.SpeedMultiplier != 1.0 {
		t.Errorf("Expected default multiplier 1.0, got %f", lvl.SpeedMultiplier)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not yaml", ":\n-"},
		{"missing id", "layout:\n  - \"#P G#\""},
		{"broken layout", "id: bad\nlayout:\n  - \"###\"\n  - \"#\""},
		{"no player", "id: bad\nlayout:\n  - \"#G#\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tt.in)); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "b.yaml", validLevelYAML)
	writeLevel(t, dir, "a.yaml", `
id: another
layout:
  - "#####"
  - "#P.G#"
  - "#####"
`)
	writeLevel(t, dir, "ignored.txt", "not a level")
	writeLevel(t, dir, "broken.yaml", "id: broken\nlayout:\n  - \"###\"")

	loader := NewLoader(dir)
	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	// Invalid and non-YAML files are skipped; results come sorted by ID.
	if len(all) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(all))
	}
	if all[0].ID != "another" || all[1].ID != "custom" {
		t.Errorf("Expected [another custom], got [%s %s]", all[0].ID, all[1].ID)
	}
}

func writeLevel(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}
