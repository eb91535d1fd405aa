package levels

import "testing"

func TestAllBuiltinLevelsValid(t *testing.T) {
	if LevelCount() != 3 {
		t.Fatalf("Expected 3 built-in levels, got %d", LevelCount())
	}

	for i := range Levels {
		l := &Levels[i]
		m, err := l.Maze()
		if err != nil {
			t.Errorf("Level %s: %v", l.ID, err)
			continue
		}

		if m.Width() != 20 || m.Height() != 21 {
			t.Errorf("Level %s: expected 20x21, got %dx%d", l.ID, m.Width(), m.Height())
		}
		if m.PelletCount() == 0 {
			t.Errorf("Level %s: no pellets", l.ID)
		}
		if l.GhostCount < 2 || l.GhostCount > 4 {
			t.Errorf("Level %s: ghost count %d out of range", l.ID, l.GhostCount)
		}
		if len(m.GhostSpawns()) == 0 {
			t.Errorf("Level %s: no ghost spawns", l.ID)
		}
		if l.SpeedMultiplier < 1.0 {
			t.Errorf("Level %s: speed multiplier %f below base", l.ID, l.SpeedMultiplier)
		}
	}
}

func TestDifficultyProgression(t *testing.T) {
	// Later levels must be at least as hard: more ghosts, faster.
	for i := 1; i < len(Levels); i++ {
		prev, cur := &Levels[i-1], &Levels[i]
		if cur.GhostCount < prev.GhostCount {
			t.Errorf("Level %s has fewer ghosts than %s", cur.ID, prev.ID)
		}
		if cur.SpeedMultiplier < prev.SpeedMultiplier {
			t.Errorf("Level %s is slower than %s", cur.ID, prev.ID)
		}
	}
}

func TestGetLevel(t *testing.T) {
	if got := GetLevel(0); got == nil || got.ID != "classic" {
		t.Errorf("Expected classic at index 0, got %v", got)
	}
	// Indexes wrap around the roster.
	if got := GetLevel(3); got == nil || got.ID != "classic" {
		t.Errorf("Expected wrap to classic at index 3, got %v", got)
	}
	if got := GetLevel(-1); got == nil || got.ID != "gauntlet" {
		t.Errorf("Expected wrap to gauntlet at index -1, got %v", got)
	}
}

func TestGetLevelByID(t *testing.T) {
	l, ok := GetLevelByID("crossways")
	if !ok || l.Name != "Crossways" {
		t.Errorf("Expected Crossways, got %v (ok=%v)", l, ok)
	}
	if _, ok := GetLevelByID("nope"); ok {
		t.Error("Expected lookup miss for unknown ID")
	}
}

func TestLevelNames(t *testing.T) {
	names := LevelNames()
	if len(names) != len(Levels) {
		t.Fatalf("Expected %d names, got %d", len(Levels), len(names))
	}
	for i, name := range names {
		if name != Levels[i].Name {
			t.Errorf("Name %d: expected %s, got %s", i, Levels[i].Name, name)
		}
	}
}

func TestEveryLevelHasEscapableGhostHouse(t *testing.T) {
	// Ghosts must be able to reach the player from their spawn cells.
	for i := range Levels {
		l := &Levels[i]
		m, err := l.Maze()
		if err != nil {
			t.Fatalf("Level %s: %v", l.ID, err)
		}
		for _, spawn := range m.GhostSpawns() {
			if _, ok := m.NextToward(spawn, m.PlayerSpawn()); !ok {
				t.Errorf("Level %s: ghost spawn %v cannot reach the player", l.ID, spawn)
			}
		}
	}
}
