package audio

import (
	"log"

	"github.com/faiface/beep"
)

// Sink is an opened audio output
type Sink interface {
	Play(s beep.Streamer)
	Close() error
}

// Opener opens the audio output at a sample rate
type Opener func(rate beep.SampleRate) (Sink, error)

// Player owns the single audio output for the lifetime of the program.
// The output is opened on the first cue and released by Close. When it
// cannot be opened the player stays silent.
type Player struct {
	rate      beep.SampleRate
	volume    float64
	open      Opener
	sink      Sink
	opened    bool
	silent    bool
	muted     bool
	overrides map[Cue]*beep.Buffer
}

// NewPlayer creates a player; nothing is opened until a cue is played
func NewPlayer(rate beep.SampleRate, volume float64, open Opener) *Player {
	return &Player{
		rate:      rate,
		volume:    volume,
		open:      open,
		overrides: make(map[Cue]*beep.Buffer),
	}
}

// Override replaces the synthesized sound of a cue with a decoded buffer
func (p *Player) Override(c Cue, buf *beep.Buffer) {
	p.overrides[c] = buf
}

// SampleRate reports the rate cues are produced at
func (p *Player) SampleRate() beep.SampleRate {
	return p.rate
}

// PlayBuzzer plays the rejection cue
func (p *Player) PlayBuzzer() {
	p.Play(CueReject)
}

// PlayCelebration plays the acceptance cue
func (p *Player) PlayCelebration() {
	p.Play(CueAccept)
}

// Play sends a cue to the output, opening it first if needed.
// Returns false when nothing was played.
func (p *Player) Play(c Cue) bool {
	if p.muted {
		return false
	}
	if !p.ensureOpen() {
		return false
	}

	s := p.streamer(c)
	if s == nil {
		return false
	}
	p.sink.Play(newVolume(s, p.volume))
	return true
}

func (p *Player) streamer(c Cue) beep.Streamer {
	if buf, ok := p.overrides[c]; ok {
		return buf.Streamer(0, buf.Len())
	}
	switch c {
	case CueReject:
		return Buzzer(p.rate)
	case CueAccept:
		return Celebration(p.rate)
	default:
		return nil
	}
}

func (p *Player) ensureOpen() bool {
	if p.opened {
		return !p.silent
	}
	p.opened = true

	if p.open == nil {
		p.silent = true
		return false
	}
	sink, err := p.open(p.rate)
	if err != nil {
		log.Printf("audio output unavailable, running silent: %v", err)
		p.silent = true
		return false
	}
	p.sink = sink
	return true
}

// ToggleMute flips mute, returns true if sound is now on
func (p *Player) ToggleMute() bool {
	p.muted = !p.muted
	return !p.muted
}

// SetMuted sets mute state directly
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	return p.muted
}

// Close releases the output if it was opened
func (p *Player) Close() error {
	if p.sink == nil {
		return nil
	}
	err := p.sink.Close()
	p.sink = nil
	p.silent = true
	return err
}
