// Package audio plays short synthesized tones for game events. All
// sounds are generated; there are no asset files. Audio failures are
// silent: a machine without a sound device still plays the game.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// cue describes the tone played for one game event.
type cue struct {
	freq     float64
	duration time.Duration
	gain     float64
}

// cues maps game events to their tones.
var cues = map[core.Event]cue{
	core.EventPelletEaten:      {freq: 880, duration: 50 * time.Millisecond, gain: 0.3},
	core.EventPowerPelletEaten: {freq: 440, duration: 200 * time.Millisecond, gain: 0.4},
	core.EventGhostEaten:       {freq: 660, duration: 150 * time.Millisecond, gain: 0.5},
	core.EventPlayerCaught:     {freq: 220, duration: 300 * time.Millisecond, gain: 0.6},
	core.EventLevelWon:         {freq: 1000, duration: 400 * time.Millisecond, gain: 0.5},
	core.EventLevelLost:        {freq: 220, duration: 500 * time.Millisecond, gain: 0.6},
}

// Engine owns the speaker and a mixer that overlapping tones are
// played into. A muted or failed engine accepts events and does
// nothing.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewEngine creates an audio engine. Call Init before use.
func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Init opens the speaker. On error the engine stays silent; the game
// is fully playable without audio.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// SetMuted enables or disables playback.
func (e *Engine) SetMuted(muted bool) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
}

// Handle plays the cue for each event in the frame.
func (e *Engine) Handle(events []core.Event) {
	if e == nil {
		return
	}
	e.mu.Lock()
	ready := e.initialized && !e.muted
	e.mu.Unlock()
	if !ready {
		return
	}

	for _, ev := range events {
		c, ok := cues[ev]
		if !ok {
			continue
		}
		e.play(c)
	}
}

func (e *Engine) play(c cue) {
	s := newTone(c.freq, c.duration, c.gain, sampleRate)
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}
