// Package maze provides the static maze model: an immutable grid of
// tiles parsed from an ASCII layout, with walkability queries, tunnel
// wrap at open border cells, and spawn point extraction.
package maze

import (
	"fmt"
)

// Tile represents the kind of a single maze cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TilePellet
	TilePowerPellet
	TileGhostSpawn
	TilePlayerSpawn
)

// Cell is an integer grid coordinate: X is the column, Y is the row.
type Cell struct {
	X, Y int
}

// Direction represents a four-way movement direction on the grid.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (dx, dy) unit step for the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Directions lists all four movement directions in the fixed priority
// order used for tie-breaking: up, left, down, right.
var Directions = [4]Direction{DirUp, DirLeft, DirDown, DirRight}

// Maze is an immutable 2D grid of tiles plus spawn coordinates.
// Walkable border cells act as tunnels: stepping off one edge re-enters
// at the paired cell on the opposite edge of the same row or column.
type Maze struct {
	width   int
	height  int
	tiles   [][]Tile
	player  Cell
	ghosts  []Cell
	pellets int
}

// Layout characters understood by Parse.
const (
	charWall   = '#'
	charPellet = '.'
	charPower  = 'o'
	charGhost  = 'G'
	charPlayer = 'P'
	charEmpty  = ' '
)

// Parse builds a Maze from an ASCII layout. Every row must have the
// same length; the layout must contain exactly one player spawn and at
// least one ghost spawn.
func Parse(layout []string) (*Maze, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("maze: empty layout")
	}

	height := len(layout)
	width := len(layout[0])

	m := &Maze{
		width:  width,
		height: height,
		tiles:  make([][]Tile, height),
		player: Cell{X: -1, Y: -1},
	}

	for y, row := range layout {
		if len(row) != width {
			return nil, fmt.Errorf("maze: row %d has length %d, want %d", y, len(row), width)
		}
		m.tiles[y] = make([]Tile, width)
		for x, ch := range []byte(row) {
			switch ch {
			case charWall:
				m.tiles[y][x] = TileWall
			case charPellet:
				m.tiles[y][x] = TilePellet
				m.pellets++
			case charPower:
				m.tiles[y][x] = TilePowerPellet
				m.pellets++
			case charGhost:
				m.tiles[y][x] = TileGhostSpawn
				m.ghosts = append(m.ghosts, Cell{X: x, Y: y})
			case charPlayer:
				if m.player.X >= 0 {
					return nil, fmt.Errorf("maze: multiple player spawns")
				}
				m.tiles[y][x] = TilePlayerSpawn
				m.player = Cell{X: x, Y: y}
			case charEmpty:
				m.tiles[y][x] = TileEmpty
			default:
				return nil, fmt.Errorf("maze: unknown tile %q at (%d, %d)", ch, x, y)
			}
		}
	}

	if m.player.X < 0 {
		return nil, fmt.Errorf("maze: no player spawn")
	}
	if len(m.ghosts) == 0 {
		return nil, fmt.Errorf("maze: no ghost spawns")
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// InBounds reports whether the cell lies within the grid.
func (m *Maze) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// Tile returns the tile kind at the given cell.
// Out-of-bounds cells read as walls.
func (m *Maze) Tile(c Cell) Tile {
	if !m.InBounds(c) {
		return TileWall
	}
	return m.tiles[c.Y][c.X]
}

// IsWalkable reports whether an entity may occupy the cell.
func (m *Maze) IsWalkable(c Cell) bool {
	return m.InBounds(c) && m.tiles[c.Y][c.X] != TileWall
}

// IsTunnel reports whether the cell is a walkable border cell, i.e. a
// tunnel entrance that wraps to the opposite edge.
func (m *Maze) IsTunnel(c Cell) bool {
	if !m.IsWalkable(c) {
		return false
	}
	return c.X == 0 || c.X == m.width-1 || c.Y == 0 || c.Y == m.height-1
}

// Wrap maps an out-of-bounds coordinate onto the grid by wrapping
// across the paired edge. In-bounds cells are returned unchanged.
func (m *Maze) Wrap(c Cell) Cell {
	c.X = ((c.X % m.width) + m.width) % m.width
	c.Y = ((c.Y % m.height) + m.height) % m.height
	return c
}

// Step returns the neighboring cell in the given direction, wrapping
// across the maze edge.
func (m *Maze) Step(c Cell, d Direction) Cell {
	dx, dy := d.Delta()
	return m.Wrap(Cell{X: c.X + dx, Y: c.Y + dy})
}

// Neighbors returns the walkable four-directional neighbors of the
// cell, honoring tunnel wrap, in the fixed priority order.
func (m *Maze) Neighbors(c Cell) []Cell {
	result := make([]Cell, 0, 4)
	for _, d := range Directions {
		n := m.Step(c, d)
		if m.IsWalkable(n) {
			result = append(result, n)
		}
	}
	return result
}

// PelletCount returns the number of pellets and power pellets in the
// parsed layout.
func (m *Maze) PelletCount() int {
	return m.pellets
}

// PlayerSpawn returns the player's starting cell.
func (m *Maze) PlayerSpawn() Cell {
	return m.player
}

// GhostSpawns returns the ghost house cells in layout order.
func (m *Maze) GhostSpawns() []Cell {
	return m.ghosts
}

// NextToward returns the first step of a shortest path from one cell to
// another, honoring tunnel wrap. Used by eaten ghosts returning home.
// Returns false if no path exists or the cells coincide.
func (m *Maze) NextToward(from, to Cell) (Direction, bool) {
	if from == to || !m.IsWalkable(from) || !m.IsWalkable(to) {
		return DirNone, false
	}

	// BFS from the origin, remembering the initial direction that first
	// reached each cell. Candidate directions are scanned in priority
	// order so ties resolve the same way as intersection choices.
	type entry struct {
		cell  Cell
		first Direction
	}
	visited := make(map[Cell]bool, m.width*m.height)
	visited[from] = true
	queue := make([]entry, 0, 16)

	for _, d := range Directions {
		n := m.Step(from, d)
		if m.IsWalkable(n) && !visited[n] {
			if n == to {
				return d, true
			}
			visited[n] = true
			queue = append(queue, entry{cell: n, first: d})
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			n := m.Step(cur.cell, d)
			if !m.IsWalkable(n) || visited[n] {
				continue
			}
			if n == to {
				return cur.first, true
			}
			visited[n] = true
			queue = append(queue, entry{cell: n, first: cur.first})
		}
	}

	return DirNone, false
}
