package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the renderer can react to what is currently playing.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

// NewTap creates a tap remembering ringSize samples
func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Level returns the RMS of the last n samples (mono mix), in [0, 1] for unclipped audio
func (t *Tap) Level(n int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	if n <= 0 {
		return 0
	}

	var sumSquares float64
	idx := t.nextIndex
	for i := 0; i < n; i++ {
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		mono := (t.buffer[idx][0] + t.buffer[idx][1]) * 0.5
		sumSquares += mono * mono
	}
	return math.Sqrt(sumSquares / float64(n))
}
