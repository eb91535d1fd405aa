package maze

import "testing"

func testLayout() []string {
	return []string{
		"#######",
		"#o...G#",
		"#.###.#",
		" ..P.. ",
		"#######",
	}
}

func mustParse(t *testing.T, layout []string) *Maze {
	t.Helper()
	m, err := Parse(layout)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return m
}

func TestParse(t *testing.T) {
	m := mustParse(t, testLayout())

	if m.Width() != 7 || m.Height() != 5 {
		t.Errorf("Expected 7x5, got %dx%d", m.Width(), m.Height())
	}
	if got := m.PlayerSpawn(); got != (Cell{X: 3, Y: 3}) {
		t.Errorf("Expected player spawn (3,3), got %v", got)
	}
	spawns := m.GhostSpawns()
	if len(spawns) != 1 || spawns[0] != (Cell{X: 5, Y: 1}) {
		t.Errorf("Expected ghost spawn [(5,1)], got %v", spawns)
	}
	// 1 power + 3 pellets in row 1, 2 in row 2, 4 in row 3
	if got := m.PelletCount(); got != 10 {
		t.Errorf("Expected 10 pellets, got %d", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
	}{
		{"empty", nil},
		{"ragged rows", []string{"###", "##"}},
		{"no player", []string{"###", "#G#", "###"}},
		{"two players", []string{"#####", "#PGP#", "#####"}},
		{"no ghosts", []string{"###", "#P#", "###"}},
		{"unknown tile", []string{"#####", "#PGx#", "#####"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.layout); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestTileAndWalkable(t *testing.T) {
	m := mustParse(t, testLayout())

	if m.Tile(Cell{X: 0, Y: 0}) != TileWall {
		t.Error("Expected wall at (0,0)")
	}
	if m.Tile(Cell{X: 1, Y: 1}) != TilePowerPellet {
		t.Error("Expected power pellet at (1,1)")
	}
	if m.Tile(Cell{X: -1, Y: 2}) != TileWall {
		t.Error("Expected out-of-bounds to read as wall")
	}
	if m.IsWalkable(Cell{X: 0, Y: 0}) {
		t.Error("Expected (0,0) not walkable")
	}
	if !m.IsWalkable(Cell{X: 3, Y: 3}) {
		t.Error("Expected player spawn walkable")
	}
	if !m.IsWalkable(Cell{X: 5, Y: 1}) {
		t.Error("Expected ghost spawn walkable")
	}
}

func TestTunnelWrap(t *testing.T) {
	m := mustParse(t, testLayout())

	west := Cell{X: 0, Y: 3}
	east := Cell{X: 6, Y: 3}

	if !m.IsTunnel(west) || !m.IsTunnel(east) {
		t.Fatal("Expected border cells of row 3 to be tunnels")
	}
	if m.IsTunnel(Cell{X: 3, Y: 3}) {
		t.Error("Expected interior cell not to be a tunnel")
	}

	if got := m.Step(west, DirLeft); got != east {
		t.Errorf("Expected west tunnel to wrap to %v, got %v", east, got)
	}
	if got := m.Step(east, DirRight); got != west {
		t.Errorf("Expected east tunnel to wrap to %v, got %v", west, got)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
		DirNone:  DirNone,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestNeighbors(t *testing.T) {
	m := mustParse(t, testLayout())

	// (3,3) has open cells left and right, walls above and below.
	got := m.Neighbors(Cell{X: 3, Y: 3})
	want := []Cell{{X: 2, Y: 3}, {X: 4, Y: 3}}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbor %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	// Tunnel cells see their wrapped neighbor.
	tunnelNeighbors := m.Neighbors(Cell{X: 0, Y: 3})
	found := false
	for _, n := range tunnelNeighbors {
		if n == (Cell{X: 6, Y: 3}) {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected wrapped neighbor (6,3) in %v", tunnelNeighbors)
	}
}

func TestNextToward(t *testing.T) {
	m := mustParse(t, testLayout())

	// From the player spawn to the ghost spawn the only route heads
	// right then up through (5,2).
	d, ok := m.NextToward(Cell{X: 3, Y: 3}, Cell{X: 5, Y: 1})
	if !ok {
		t.Fatal("Expected a path to exist")
	}
	if d != DirRight {
		t.Errorf("Expected first step right, got %v", d)
	}

	// Walking the full path must terminate at the target.
	at := Cell{X: 3, Y: 3}
	target := Cell{X: 5, Y: 1}
	for i := 0; i < 50 && at != target; i++ {
		step, ok := m.NextToward(at, target)
		if !ok {
			t.Fatalf("No step from %v", at)
		}
		at = m.Step(at, step)
	}
	if at != target {
		t.Errorf("Path never reached %v, stopped at %v", target, at)
	}

	// Identical cells have no next step.
	if _, ok := m.NextToward(target, target); ok {
		t.Error("Expected no step for identical cells")
	}
}

func TestNextTowardUsesTunnel(t *testing.T) {
	// The tunnel is the short way round: left out of the west entrance
	// wraps next to the target.
	m := mustParse(t, []string{
		"#######",
		" P...G ",
		"#######",
	})

	d, ok := m.NextToward(Cell{X: 1, Y: 1}, Cell{X: 6, Y: 1})
	if !ok {
		t.Fatal("Expected a path to exist")
	}
	if d != DirLeft {
		t.Errorf("Expected the tunnel shortcut left, got %v", d)
	}
}

func TestNextTowardNoPath(t *testing.T) {
	m := mustParse(t, []string{
		"#####",
		"#P#G#",
		"#####",
	})

	if _, ok := m.NextToward(Cell{X: 1, Y: 1}, Cell{X: 3, Y: 1}); ok {
		t.Error("Expected no path through a solid wall")
	}
}
