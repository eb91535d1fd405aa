// Package game implements the maze-chase game engine: entity motion,
// the ghost behavior state machine, collision and scoring, and the
// fixed-timestep game loop behind the platform's Game interface.
package game

import (
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// Entity is a moving actor (player or ghost). Position is tracked as
// the last cell center passed plus fractional progress toward the next
// cell, so "aligned to a cell center" is an exact condition rather than
// a floating-point comparison: progress is snapped to zero whenever a
// center is reached.
type Entity struct {
	At       maze.Cell      // Last cell center passed
	Progress float64        // Fraction of the way toward the next cell, [0, 1)
	Dir      maze.Direction // Current movement direction
	Next     maze.Direction // Buffered intended direction (player only)
	Speed    float64        // Cells per tick
}

// Aligned reports whether the entity sits exactly on a cell center.
func (e *Entity) Aligned() bool {
	return e.Progress == 0
}

// Cell returns the cell the entity currently occupies: the nearer of
// the two cells it is between.
func (e *Entity) Cell(m *maze.Maze) maze.Cell {
	if e.Progress < 0.5 {
		return e.At
	}
	return m.Step(e.At, e.Dir)
}

// Pos returns the continuous position in cell units, where integer
// coordinates are cell centers. Mid-tunnel positions may extend past
// the grid edge; callers wrap for display.
func (e *Entity) Pos(m *maze.Maze) (float64, float64) {
	dx, dy := e.Dir.Delta()
	return float64(e.At.X) + float64(dx)*e.Progress,
		float64(e.At.Y) + float64(dy)*e.Progress
}

// Reverse turns the entity around in place. Between cell centers the
// reference cell flips to the cell it was heading toward, preserving
// the fractional offset.
func (e *Entity) Reverse(m *maze.Maze) {
	if e.Dir == maze.DirNone {
		return
	}
	if e.Progress > 0 {
		e.At = m.Step(e.At, e.Dir)
		e.Progress = 1 - e.Progress
	}
	e.Dir = e.Dir.Opposite()
}

// PlaceAt puts the entity at rest on the given cell center.
func (e *Entity) PlaceAt(c maze.Cell) {
	e.At = c
	e.Progress = 0
	e.Dir = maze.DirNone
	e.Next = maze.DirNone
}

// steerFunc decides the direction to take at a cell center. Returning
// DirNone, or a direction leading into a wall, stops the entity.
type steerFunc func(at maze.Cell) maze.Direction

// advance moves the entity by its speed for one tick, consulting steer
// at every cell center it crosses. Movement is segmented from center to
// center so direction changes happen exactly at centers and tunnel wrap
// preserves the fractional offset.
func (e *Entity) advance(m *maze.Maze, steer steerFunc) {
	remaining := e.Speed
	for remaining > 1e-9 {
		if e.Aligned() {
			d := steer(e.At)
			if d == maze.DirNone || !m.IsWalkable(m.Step(e.At, d)) {
				e.Dir = maze.DirNone
				return
			}
			e.Dir = d
		}

		step := remaining
		if left := 1 - e.Progress; step > left {
			step = left
		}
		e.Progress += step
		remaining -= step

		if e.Progress >= 1-1e-9 {
			e.At = m.Step(e.At, e.Dir)
			e.Progress = 0
		}
	}
}
