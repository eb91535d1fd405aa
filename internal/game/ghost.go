package game

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// Mode is a ghost's behavior state. Exactly one mode holds at any time.
type Mode uint8

const (
	ModeScatter Mode = iota
	ModeChase
	ModeFrightened
	ModeEaten
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// ghostIdentity is the fixed roster of ghost personalities: display
// name, color, and which maze corner the ghost retreats to in Scatter.
// Corners are indexed 0=top-right, 1=top-left, 2=bottom-right,
// 3=bottom-left.
type ghostIdentity struct {
	name   string
	color  core.Color
	corner int
}

var ghostRoster = [4]ghostIdentity{
	{name: "Blinky", color: core.ColorBrightRed, corner: 0},
	{name: "Pinky", color: core.ColorBrightMagenta, corner: 1},
	{name: "Inky", color: core.ColorBrightCyan, corner: 2},
	{name: "Clyde", color: core.ColorOrange, corner: 3},
}

// Ghost is one maze inhabitant with its behavior state.
type Ghost struct {
	Entity
	Name  string
	Color core.Color

	Mode        Mode
	frightTimer int       // Ticks of Frightened remaining
	home        maze.Cell // Spawn cell; Eaten ghosts travel here
	corner      maze.Cell // Scatter target
	baseSpeed   float64   // Scatter/chase speed for the current level
}

// cornerCell maps a corner index to a just-inside-the-border cell.
func cornerCell(m *maze.Maze, corner int) maze.Cell {
	switch corner {
	case 0:
		return maze.Cell{X: m.Width() - 2, Y: 1}
	case 1:
		return maze.Cell{X: 1, Y: 1}
	case 2:
		return maze.Cell{X: m.Width() - 2, Y: m.Height() - 2}
	default:
		return maze.Cell{X: 1, Y: m.Height() - 2}
	}
}

// newGhost creates a ghost of the given roster index at its home cell.
func newGhost(m *maze.Maze, index int, home maze.Cell, baseSpeed float64) *Ghost {
	id := ghostRoster[index%len(ghostRoster)]
	gh := &Ghost{
		Name:      id.name,
		Color:     id.color,
		Mode:      ModeScatter,
		home:      home,
		corner:    cornerCell(m, id.corner),
		baseSpeed: baseSpeed,
	}
	gh.PlaceAt(home)
	return gh
}

// ghostEvent is an input to the ghost state machine.
type ghostEvent uint8

const (
	evPowerPellet   ghostEvent = iota // Player collected a power pellet
	evFrightExpired                   // Frightened timer ran out
	evTouched                         // Player touched the ghost while frightened
	evReachedHome                     // Eaten ghost arrived at its spawn cell
	evPhaseFlip                       // Global scatter/chase phase alternated
)

// apply is the explicit transition table of the ghost state machine.
// Every transition is a total function of the current mode and the
// event; invalid pairs leave the mode unchanged.
//
//	Scatter/Chase --powerPellet--> Frightened (reverses once on entry)
//	Frightened    --powerPellet--> Frightened (timer restarts)
//	Frightened    --expired------> Chase
//	Frightened    --touched------> Eaten
//	Eaten         --reachedHome--> Scatter
//	Scatter/Chase --phaseFlip----> the new global phase
func (gh *Ghost) apply(g *Game, ev ghostEvent) {
	switch ev {
	case evPowerPellet:
		if gh.Mode == ModeEaten {
			return
		}
		if gh.Mode != ModeFrightened {
			gh.Reverse(g.mz)
		}
		gh.Mode = ModeFrightened
		gh.frightTimer = g.rules.Timings.FrightenedTicks

	case evFrightExpired:
		if gh.Mode != ModeFrightened {
			return
		}
		gh.Mode = ModeChase
		gh.frightTimer = 0

	case evTouched:
		if gh.Mode != ModeFrightened {
			return
		}
		gh.Mode = ModeEaten
		gh.frightTimer = 0

	case evReachedHome:
		if gh.Mode != ModeEaten {
			return
		}
		gh.Mode = ModeScatter

	case evPhaseFlip:
		if gh.Mode == ModeScatter || gh.Mode == ModeChase {
			gh.Mode = g.phase
		}
	}
}

// speed returns the ghost's current speed in cells per tick.
func (gh *Ghost) speed(g *Game) float64 {
	switch gh.Mode {
	case ModeFrightened:
		return g.rules.Speeds.Frightened
	case ModeEaten:
		return g.rules.Speeds.Eaten
	default:
		return gh.baseSpeed
	}
}

// target returns the cell the ghost is steering toward in its current
// mode. Frightened ghosts have no target; they wander randomly.
func (gh *Ghost) target(g *Game) maze.Cell {
	switch gh.Mode {
	case ModeChase:
		return g.player.Cell(g.mz)
	case ModeEaten:
		return gh.home
	default:
		return gh.corner
	}
}

// Blinking reports whether a frightened ghost is in its warning phase.
func (gh *Ghost) Blinking(g *Game) bool {
	return gh.Mode == ModeFrightened &&
		gh.frightTimer < g.rules.Timings.BlinkTicks &&
		(gh.frightTimer/10)%2 == 0
}

// steer decides the ghost's direction at a cell center.
//
// Scatter/Chase: among walkable, non-reversing neighbors, commit to the
// one whose straight-line distance to the target cell is smallest; ties
// break by the fixed priority order up, left, down, right. This greedy
// per-intersection choice is deliberate; ghosts never path-find except
// when Eaten.
//
// Frightened: a uniformly random walkable, non-reversing neighbor.
//
// Eaten: the first hop of a shortest path home. Crossing the home
// center revives the ghost into Scatter before the choice is made.
//
// A dead end (no non-reversing option) permits reversal.
func (gh *Ghost) steer(g *Game, at maze.Cell) maze.Direction {
	if gh.Mode == ModeEaten {
		// Revive at the home center crossing itself. A ghost eaten
		// mid-segment carries a fractional offset, so it may cross
		// home in the middle of a tick and never end a tick aligned
		// there.
		if at == gh.home {
			gh.apply(g, evReachedHome)
		} else if d, ok := g.mz.NextToward(at, gh.home); ok {
			return d
		}
		// Boxed in; fall through to the greedy choice.
	}

	options := ghostOptions(g.mz, at, gh.Dir)
	if len(options) == 0 {
		// Dead end: reverse if possible, otherwise stay put.
		back := gh.Dir.Opposite()
		if back != maze.DirNone && g.mz.IsWalkable(g.mz.Step(at, back)) {
			return back
		}
		return maze.DirNone
	}

	if gh.Mode == ModeFrightened {
		return options[g.rng.Intn(len(options))]
	}

	return closestToTarget(g.mz, at, options, gh.target(g))
}

// ghostOptions returns the walkable, non-reversing directions from a
// cell, in priority order.
func ghostOptions(m *maze.Maze, at maze.Cell, current maze.Direction) []maze.Direction {
	reverse := current.Opposite()
	options := make([]maze.Direction, 0, 4)
	for _, d := range maze.Directions {
		if d == reverse {
			continue
		}
		if m.IsWalkable(m.Step(at, d)) {
			options = append(options, d)
		}
	}
	return options
}

// closestToTarget picks the option whose neighbor cell minimizes the
// squared straight-line distance to the target. Options arrive in
// priority order, so the first minimum wins ties.
func closestToTarget(m *maze.Maze, at maze.Cell, options []maze.Direction, target maze.Cell) maze.Direction {
	best := options[0]
	bestDist := -1
	for _, d := range options {
		n := m.Step(at, d)
		dx, dy := n.X-target.X, n.Y-target.Y
		dist := dx*dx + dy*dy
		if bestDist < 0 || dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}
