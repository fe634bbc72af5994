package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

const (
	buzzerLength = 300 * time.Millisecond

	honkLength    = 500 * time.Millisecond
	whistleSweep  = 200 * time.Millisecond
	whistleLength = 300 * time.Millisecond

	// Gain every envelope decays to
	tailGain = 0.01
)

// Buzzer is a low square wave dropping from 100Hz to 40Hz
func Buzzer(rate beep.SampleRate) beep.Streamer {
	return NewVoice(
		WaveSquare,
		Ramp{From: 100, To: 40, Over: buzzerLength},
		Ramp{From: 0.3, To: tailGain, Over: buzzerLength},
		buzzerLength,
		rate,
	)
}

// Celebration is a party honk: a rising sawtooth under a short triangle whistle
func Celebration(rate beep.SampleRate) beep.Streamer {
	honk := NewVoice(
		WaveSaw,
		Ramp{From: 220, To: 280, Over: honkLength},
		Ramp{From: 0.2, To: tailGain, Over: honkLength},
		honkLength,
		rate,
	)
	whistle := NewVoice(
		WaveTriangle,
		Ramp{From: 880, To: 1200, Over: whistleSweep},
		Ramp{From: 0.1, To: tailGain, Over: whistleLength},
		whistleLength,
		rate,
	)
	return beep.Mix(honk, whistle)
}

// newVolume scales a stream linearly; zero or less is silent
// math.Log2(0) is -Inf, so silence is explicit
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
