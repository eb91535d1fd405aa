package game

import "github.com/vovakirdan/tui-pacman/internal/maze"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// GhostSnapshot captures a single ghost's state.
type GhostSnapshot struct {
	Name        string
	X           int
	Y           int
	Progress    float64
	Dir         maze.Direction
	Mode        Mode
	FrightTimer int
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick             uint64
	Level            int // Current level (1-indexed for display)
	Score            int
	Lives            int
	PelletsEaten     int
	PelletsRemaining int
	PlayerX          int
	PlayerY          int
	PlayerProgress   float64
	PlayerDir        maze.Direction
	Phase            Mode
	PhaseTimer       int
	Ghosts           []GhostSnapshot
	State            GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.victory:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	ghosts := make([]GhostSnapshot, 0, len(g.ghosts))
	for _, gh := range g.ghosts {
		ghosts = append(ghosts, GhostSnapshot{
			Name:        gh.Name,
			X:           gh.At.X,
			Y:           gh.At.Y,
			Progress:    gh.Progress,
			Dir:         gh.Dir,
			Mode:        gh.Mode,
			FrightTimer: gh.frightTimer,
		})
	}

	return Snapshot{
		Tick:             g.tick,
		Level:            g.levelIndex + 1,
		Score:            g.score,
		Lives:            g.lives,
		PelletsEaten:     g.pelletsEaten,
		PelletsRemaining: len(g.pellets),
		PlayerX:          g.player.At.X,
		PlayerY:          g.player.At.Y,
		PlayerProgress:   g.player.Progress,
		PlayerDir:        g.player.Dir,
		Phase:            g.phase,
		PhaseTimer:       g.phaseTimer,
		Ghosts:           ghosts,
		State:            state,
	}
}
