package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/levels"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// catchRadius is the player-ghost collision distance in cell units.
const catchRadius = 0.7

// Package-level knobs set by the CLI before the game is created
// (mirrors the per-game config pattern of the platform).
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
	customRoster       []levels.Level
)

// SetConfigPath sets the gameplay config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-based). 0 starts from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetRoster replaces the built-in level roster, e.g. with levels loaded
// from a user directory. Passing nil restores the built-in roster.
func SetRoster(roster []levels.Level) {
	customRoster = roster
}

// Game implements the maze-chase game. It owns all entities for the
// duration of a level playthrough and the global scatter/chase phase
// timer shared across ghosts.
type Game struct {
	rules config.Config
	rng   *rand.Rand
	tick  uint64

	levelIndex int
	startLevel int // Roster index the run started on; restarts return here
	level      *levels.Level
	mz         *maze.Maze
	loadErr    error

	// Collectible state: pellets remaining on the board, keyed by cell.
	// Invariant: len(pellets) + pelletsEaten == pelletsTotal.
	pellets      map[maze.Cell]maze.Tile
	pelletsTotal int
	pelletsEaten int

	player Entity
	ghosts []*Ghost

	// Global alternating scatter/chase phase, shared across ghosts.
	phase      Mode
	phaseTimer int

	score int
	lives int

	// Screen layout
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	// State flags
	paused       bool
	gameOver     bool
	victory      bool // All levels cleared
	levelCleared bool
	tooSmall     bool

	events []core.Event
}

// New creates a new game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pacman"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Man"
}

// roster returns the active level roster.
func (g *Game) roster() []levels.Level {
	if len(customRoster) > 0 {
		return customRoster
	}
	return levels.Levels
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.victory = false
	g.levelCleared = false
	g.paused = false
	g.tooSmall = false
	g.loadErr = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2
	g.events = nil

	g.rules = loadRules()
	g.lives = g.rules.Gameplay.Lives

	roster := g.roster()
	if selectedStartLevel > 0 && selectedStartLevel <= len(roster) {
		g.startLevel = selectedStartLevel - 1
		selectedStartLevel = 0 // Consumed; restarts reuse the stored index
	}
	if g.startLevel >= len(roster) {
		g.startLevel = 0
	}
	g.levelIndex = g.startLevel

	g.loadLevel()
}

// loadRules loads the gameplay config honoring the CLI knobs.
func loadRules() config.Config {
	rules, err := config.Load(configPath)
	if err != nil {
		rules = config.Default()
	}
	if difficultyPreset != "" && config.ValidPreset(difficultyPreset) {
		config.ApplyPreset(&rules, config.Preset(difficultyPreset))
	}
	return rules
}

// loadLevel loads the current level's maze and spawns all entities.
func (g *Game) loadLevel() {
	roster := g.roster()
	g.level = &roster[g.levelIndex%len(roster)]

	m, err := g.level.Maze()
	if err != nil {
		// Fatal to level start; nothing sensible to play.
		g.loadErr = err
		g.gameOver = true
		return
	}
	g.mz = m

	g.levelCleared = false

	// Collect pellets from the layout.
	g.pellets = make(map[maze.Cell]maze.Tile)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := maze.Cell{X: x, Y: y}
			switch m.Tile(c) {
			case maze.TilePellet, maze.TilePowerPellet:
				g.pellets[c] = m.Tile(c)
			}
		}
	}
	g.pelletsTotal = len(g.pellets)
	g.pelletsEaten = 0

	// Screen fit check.
	requiredW := m.Width() + 2
	requiredH := m.Height() + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.mapOffsetX = (g.screenW - m.Width()) / 2
	g.mapOffsetY = g.hudHeight

	// Spawn entities.
	g.player = Entity{Speed: g.rules.Speeds.Player}
	g.player.PlaceAt(m.PlayerSpawn())

	mult := g.level.SpeedMultiplier
	if !g.rules.Gameplay.LevelSpeedScaling || mult <= 0 {
		mult = 1.0
	}
	ghostSpeed := g.rules.Speeds.Ghost * mult

	spawns := m.GhostSpawns()
	count := g.level.GhostCount
	if count <= 0 {
		count = len(spawns)
	}
	g.ghosts = make([]*Ghost, 0, count)
	for i := 0; i < count; i++ {
		g.ghosts = append(g.ghosts, newGhost(m, i, spawns[i%len(spawns)], ghostSpeed))
	}

	// The global phase starts in Scatter on every level.
	g.phase = ModeScatter
	g.phaseTimer = g.rules.Timings.ScatterTicks
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.victory) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return g.result()
	}

	// Handle pause toggle; pausing freezes all timers but the paused
	// frame still renders.
	if input.Has(core.ActionPause) && !g.gameOver && !g.victory {
		g.paused = !g.paused
	}

	if g.gameOver || g.victory || g.paused || g.tooSmall {
		return g.result()
	}

	// Level cleared: wait for confirm to advance.
	if g.levelCleared {
		if input.Has(core.ActionConfirm) {
			g.advanceLevel()
		}
		return g.result()
	}

	g.processInput(input)

	// Update order each tick: player motion, pellet collection, global
	// phase timer, ghost state machines and motion, then collisions.
	g.player.advance(g.mz, g.playerSteer)
	g.collectPellet()
	if g.levelCleared {
		// The winning pellet ends the tick; ghosts freeze in place.
		return g.result()
	}

	g.updatePhase()
	for _, gh := range g.ghosts {
		g.updateGhost(gh)
	}

	g.resolveCollisions()

	return g.result()
}

// processInput buffers the directional intent for the next cell center.
// Directions that would lead into a wall are simply not applied when
// the player reaches a center; the intent is kept, not rejected.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.player.Next = maze.DirUp
	case input.Has(core.ActionDown):
		g.player.Next = maze.DirDown
	case input.Has(core.ActionLeft):
		g.player.Next = maze.DirLeft
	case input.Has(core.ActionRight):
		g.player.Next = maze.DirRight
	}
}

// playerSteer decides the player's direction at a cell center: the
// buffered intent wins if walkable, otherwise the current direction
// continues, otherwise the player stops.
func (g *Game) playerSteer(at maze.Cell) maze.Direction {
	if g.player.Next != maze.DirNone && g.mz.IsWalkable(g.mz.Step(at, g.player.Next)) {
		return g.player.Next
	}
	if g.player.Dir != maze.DirNone && g.mz.IsWalkable(g.mz.Step(at, g.player.Dir)) {
		return g.player.Dir
	}
	return maze.DirNone
}

// collectPellet picks up the pellet on the player's cell, if any.
func (g *Game) collectPellet() {
	cell := g.player.Cell(g.mz)
	tile, ok := g.pellets[cell]
	if !ok {
		return
	}
	delete(g.pellets, cell)
	g.pelletsEaten++

	switch tile {
	case maze.TilePowerPellet:
		g.score += g.rules.Scoring.PowerPellet
		g.emit(core.EventPowerPelletEaten)
		// All non-eaten ghosts turn frightened and reverse within the
		// same tick.
		for _, gh := range g.ghosts {
			gh.apply(g, evPowerPellet)
		}
	default:
		g.score += g.rules.Scoring.Pellet
		g.emit(core.EventPelletEaten)
	}

	if len(g.pellets) == 0 {
		g.levelCleared = true
		g.emit(core.EventLevelWon)
	}
}

// updatePhase advances the global scatter/chase timer and flips the
// phase when it expires, notifying every ghost.
func (g *Game) updatePhase() {
	g.phaseTimer--
	if g.phaseTimer > 0 {
		return
	}
	if g.phase == ModeScatter {
		g.phase = ModeChase
		g.phaseTimer = g.rules.Timings.ChaseTicks
	} else {
		g.phase = ModeScatter
		g.phaseTimer = g.rules.Timings.ScatterTicks
	}
	for _, gh := range g.ghosts {
		gh.apply(g, evPhaseFlip)
	}
}

// updateGhost runs one tick of a ghost's state machine and motion.
func (g *Game) updateGhost(gh *Ghost) {
	if gh.Mode == ModeFrightened {
		gh.frightTimer--
		if gh.frightTimer <= 0 {
			gh.apply(g, evFrightExpired)
		}
	}

	gh.Speed = gh.speed(g)
	gh.advance(g.mz, func(at maze.Cell) maze.Direction {
		return gh.steer(g, at)
	})

	if gh.Mode == ModeEaten && gh.Aligned() && gh.At == gh.home {
		gh.apply(g, evReachedHome)
	}
}

// resolveCollisions checks player-ghost contact.
func (g *Game) resolveCollisions() {
	px, py := g.player.Pos(g.mz)
	for _, gh := range g.ghosts {
		gx, gy := gh.Pos(g.mz)
		dx, dy := px-gx, py-gy
		if dx*dx+dy*dy >= catchRadius*catchRadius {
			continue
		}

		switch gh.Mode {
		case ModeFrightened:
			g.score += g.rules.Scoring.Ghost
			g.emit(core.EventGhostEaten)
			gh.apply(g, evTouched)

		case ModeEaten:
			// Eyes pass through the player.

		default:
			g.lives--
			g.emit(core.EventPlayerCaught)
			if g.lives <= 0 {
				g.gameOver = true
				g.emit(core.EventLevelLost)
			} else {
				g.resetPositions()
			}
			return
		}
	}
}

// resetPositions returns all entities to their spawn cells after a
// caught player keeps a life. Ghost modes rejoin the global phase.
func (g *Game) resetPositions() {
	g.player.PlaceAt(g.mz.PlayerSpawn())
	g.player.Speed = g.rules.Speeds.Player

	spawns := g.mz.GhostSpawns()
	for i, gh := range g.ghosts {
		gh.PlaceAt(spawns[i%len(spawns)])
		gh.Mode = g.phase
		gh.frightTimer = 0
	}
}

// advanceLevel moves to the next level, keeping score and lives.
func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.levelIndex >= len(g.roster()) {
		g.victory = true
		return
	}
	g.loadLevel()
}

// emit records an event for this tick's StepResult.
func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// result builds the StepResult for the current tick.
func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: append([]core.Event(nil), g.events...),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.gameOver || g.victory,
		Paused:   g.paused,
	}
}

// PelletsRemaining returns the number of uncollected pellets.
func (g *Game) PelletsRemaining() int {
	return len(g.pellets)
}
