package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func TestToneStream(t *testing.T) {
	rate := beep.SampleRate(48000)
	s := newTone(440, 100*time.Millisecond, 0.5, rate)

	samples := make([][2]float64, 256)
	n, ok := s.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 256 {
		t.Errorf("Expected 256 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d not mono: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}

	if s.Err() != nil {
		t.Errorf("Expected no error, got: %v", s.Err())
	}
}

func TestToneClampsGain(t *testing.T) {
	rate := beep.SampleRate(48000)
	s := newTone(440, 100*time.Millisecond, 2.5, rate)

	samples := make([][2]float64, 512)
	n, _ := s.Stream(samples)

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Fatalf("Sample %d out of range with excessive gain: %f", i, samples[i][0])
		}
	}
}

func TestToneEndsAtDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	duration := 10 * time.Millisecond
	s := newTone(880, duration, 0.3, rate)

	total := 0
	samples := make([][2]float64, 512)
	for {
		n, ok := s.Stream(samples)
		total += n
		if !ok {
			break
		}
	}

	want := rate.N(duration)
	if total != want {
		t.Errorf("Expected %d samples total, got %d", want, total)
	}
}

func TestToneFadesToSilence(t *testing.T) {
	rate := beep.SampleRate(48000)
	s := newTone(440, 50*time.Millisecond, 1.0, rate)

	// First sample sits at the start of the fade-in and must be silent.
	samples := make([][2]float64, 1)
	s.Stream(samples)
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
}

func TestEngineCueCoverage(t *testing.T) {
	// Every event that should make a sound has a cue.
	events := []core.Event{
		core.EventPelletEaten,
		core.EventPowerPelletEaten,
		core.EventGhostEaten,
		core.EventPlayerCaught,
		core.EventLevelWon,
		core.EventLevelLost,
	}
	for _, ev := range events {
		c, ok := cues[ev]
		if !ok {
			t.Errorf("No cue for %v", ev)
			continue
		}
		if c.freq <= 0 || c.duration <= 0 || c.gain <= 0 || c.gain > 1 {
			t.Errorf("Invalid cue for %v: %+v", ev, c)
		}
	}
}

func TestUninitializedEngineIsSilent(t *testing.T) {
	// Handle on an engine that never opened the speaker must not panic.
	e := NewEngine()
	e.Handle([]core.Event{core.EventPelletEaten})
	e.SetMuted(true)
	e.Handle([]core.Event{core.EventLevelWon})
	e.Close()

	var nilEngine *Engine
	nilEngine.Handle([]core.Event{core.EventPelletEaten})
}
