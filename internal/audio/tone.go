package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// tone is a fixed-length sine streamer with a linear fade-in/out to
// avoid clicks at the segment boundaries.
type tone struct {
	freq        float64
	gain        float64
	phase       float64
	position    int
	total       int
	fadeSamples int
	rate        beep.SampleRate
}

// newTone creates a sine tone streamer of the given frequency, duration
// and gain (0..1).
func newTone(freq float64, duration time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	fade := rate.N(10 * time.Millisecond)
	if fade*2 > total {
		fade = total / 2
	}
	return &tone{
		freq:        freq,
		gain:        core.ClampF(gain, 0, 1),
		total:       total,
		fadeSamples: fade,
		rate:        rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		val := math.Sin(2*math.Pi*t.phase) * t.gain

		// Linear fade at both ends.
		if t.fadeSamples > 0 {
			if t.position < t.fadeSamples {
				val *= float64(t.position) / float64(t.fadeSamples)
			} else if left := t.total - t.position; left < t.fadeSamples {
				val *= float64(left) / float64(t.fadeSamples)
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
