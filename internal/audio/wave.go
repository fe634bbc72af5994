package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// rampFloor keeps exponential ramps away from zero, where they are undefined
const rampFloor = 1e-4

// Ramp is an exponential glide from From to To over Over, holding To afterwards.
// A zero Over is a constant value of To.
type Ramp struct {
	From float64
	To   float64
	Over time.Duration
}

// At returns the ramp value t seconds after its start
func (r Ramp) At(t float64) float64 {
	over := r.Over.Seconds()
	if over <= 0 || t >= over {
		return r.To
	}
	if t <= 0 {
		return r.From
	}
	from := math.Max(r.From, rampFloor)
	to := math.Max(r.To, rampFloor)
	return from * math.Pow(to/from, t/over)
}

// voice is a single oscillator with swept frequency and gain that stops after a fixed length
type voice struct {
	wave     WaveType
	freq     Ramp
	gain     Ramp
	rate     beep.SampleRate
	phase    float64
	position int
	length   int
}

// NewVoice creates an oscillator that plays for stop and then drains
func NewVoice(wave WaveType, freq, gain Ramp, stop time.Duration, rate beep.SampleRate) beep.Streamer {
	return &voice{
		wave:   wave,
		freq:   freq,
		gain:   gain,
		rate:   rate,
		length: rate.N(stop),
	}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.position >= v.length {
			return i, i > 0
		}

		t := float64(v.position) / float64(v.rate)
		val := shape(v.wave, v.phase) * v.gain.At(t)

		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.freq.At(t) / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.position++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// shape evaluates a unit waveform at phase in [0, 1)
func shape(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveTriangle:
		return 1.0 - 4.0*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
