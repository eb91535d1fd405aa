// Package levels defines the playable level roster: three built-in
// hand-authored mazes plus a loader for user-supplied YAML level files.
package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// Level is a static level definition the engine consumes read-only.
type Level struct {
	ID              string
	Name            string
	Difficulty      string
	GhostCount      int     // Number of ghosts spawned (2-4)
	SpeedMultiplier float64 // Ghost speed scale for this level
	Layout          []string
}

// Maze parses the level layout into a maze model.
func (l *Level) Maze() (*maze.Maze, error) {
	m, err := maze.Parse(l.Layout)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return m, nil
}

// Levels is the built-in campaign roster. Layout characters:
//
//	'#' wall, '.' pellet, 'o' power pellet,
//	'G' ghost house cell, 'P' player spawn, ' ' empty corridor.
//
// Walkable border cells are tunnels that wrap to the opposite edge.
var Levels = []Level{
	{
		ID:              "classic",
		Name:            "Classic",
		Difficulty:      "Easy",
		GhostCount:      2,
		SpeedMultiplier: 1.0,
		Layout: []string{
			"####################",
			"#........##........#",
			"#o##.###.##.###.##o#",
			"#..................#",
			"#.##.#.######.#.##.#",
			"#....#...##...#....#",
			"####.###.##.###.####",
			" .................. ",
			"#.##.#.##  ##.#.##.#",
			"#......#GGGG#......#",
			"#.##.#.######.#.##.#",
			"#..................#",
			"####.###.##.###.####",
			"#....#...##...#....#",
			"#.##.###.##.###.##.#",
			"#o.#............#.o#",
			"##.#.#.######.#.#.##",
			"#....#...##...#....#",
			"#.######.##.######.#",
			"#........P.........#",
			"####################",
		},
	},
	{
		ID:              "crossways",
		Name:            "Crossways",
		Difficulty:      "Medium",
		GhostCount:      3,
		SpeedMultiplier: 1.3,
		Layout: []string{
			"####################",
			"#o................o#",
			"#.###.########.###.#",
			"#.#......##......#.#",
			"#.#.####.##.####.#.#",
			"#...#..........#...#",
			"###.#.########.#.###",
			"#........##........#",
			"#.######.##.######.#",
			"#........GG........#",
			"#.######.##.######.#",
			"#........##........#",
			"###.#.########.#.###",
			"#...#..........#...#",
			"#.#.####.##.####.#.#",
			"#.#......##......#.#",
			"#.###.########.###.#",
			"#o................o#",
			"#.################.#",
			"#........P.........#",
			"####################",
		},
	},
	{
		ID:              "gauntlet",
		Name:            "Gauntlet",
		Difficulty:      "Hard",
		GhostCount:      4,
		SpeedMultiplier: 1.6,
		Layout: []string{
			"####################",
			"#o..#..........#..o#",
			"#.#.#.########.#.#.#",
			"#.#......##......#.#",
			"#.######.##.######.#",
			"#..................#",
			"#####.########.#####",
			"#........##........#",
			"#.######.##.######.#",
			"#...#...GGGG...#...#",
			"#.#.#.########.#.#.#",
			"#.#...#......#...#.#",
			"#.###.#.####.#.###.#",
			"#........##........#",
			"#####.########.#####",
			" .................. ",
			"#.######.##.######.#",
			"#........##........#",
			"#.###.########.###.#",
			"#o.......P........o#",
			"####################",
		},
	},
}

// LevelCount returns the number of built-in levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns a built-in level by index, wrapping around if the
// index exceeds the roster.
func GetLevel(index int) *Level {
	if len(Levels) == 0 {
		return nil
	}
	return &Levels[((index%len(Levels))+len(Levels))%len(Levels)]
}

// GetLevelByID returns a built-in level by its ID.
func GetLevelByID(id string) (*Level, bool) {
	for i := range Levels {
		if Levels[i].ID == id {
			return &Levels[i], true
		}
	}
	return nil, false
}

// LevelNames returns the display names of all built-in levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i := range Levels {
		names[i] = Levels[i].Name
	}
	return names
}
