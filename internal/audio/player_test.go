package audio

import (
	"errors"
	"testing"

	"github.com/faiface/beep"
)

type fakeSink struct {
	played []beep.Streamer
	closed bool
}

func (s *fakeSink) Play(st beep.Streamer) { s.played = append(s.played, st) }

func (s *fakeSink) Close() error {
	s.closed = true
	return nil
}

func countingOpener(sink *fakeSink, err error) (Opener, *int) {
	calls := 0
	return func(rate beep.SampleRate) (Sink, error) {
		calls++
		if err != nil {
			return nil, err
		}
		return sink, nil
	}, &calls
}

func TestPlayer_OpensLazilyOnce(t *testing.T) {
	sink := &fakeSink{}
	open, calls := countingOpener(sink, nil)
	p := NewPlayer(testRate, 1, open)

	if *calls != 0 {
		t.Fatal("output should not open before the first cue")
	}

	p.PlayBuzzer()
	p.PlayCelebration()
	p.PlayBuzzer()

	if *calls != 1 {
		t.Errorf("expected one open, got %d", *calls)
	}
	if len(sink.played) != 3 {
		t.Errorf("expected 3 cues played, got %d", len(sink.played))
	}
}

func TestPlayer_SilentWhenOpenFails(t *testing.T) {
	open, calls := countingOpener(nil, errors.New("no device"))
	p := NewPlayer(testRate, 1, open)

	if p.Play(CueReject) {
		t.Error("expected no playback without output")
	}
	if p.Play(CueAccept) {
		t.Error("expected no playback without output")
	}
	if *calls != 1 {
		t.Errorf("failed open should not be retried, got %d calls", *calls)
	}
}

func TestPlayer_Mute(t *testing.T) {
	sink := &fakeSink{}
	open, _ := countingOpener(sink, nil)
	p := NewPlayer(testRate, 1, open)

	if on := p.ToggleMute(); on {
		t.Error("toggle from unmuted should report sound off")
	}
	if p.Play(CueReject) {
		t.Error("muted player should not play")
	}
	if on := p.ToggleMute(); !on {
		t.Error("second toggle should report sound on")
	}
	if !p.Play(CueReject) {
		t.Error("unmuted player should play")
	}
}

func TestPlayer_OverrideReplacesSynth(t *testing.T) {
	sink := &fakeSink{}
	open, _ := countingOpener(sink, nil)
	p := NewPlayer(testRate, 1, open)

	buf := beep.NewBuffer(beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Silence(100))
	p.Override(CueAccept, buf)

	p.PlayCelebration()
	if len(sink.played) != 1 {
		t.Fatalf("expected one cue, got %d", len(sink.played))
	}
	if got := len(drain(sink.played[0])); got != 100 {
		t.Errorf("override should play the buffer (100 samples), got %d", got)
	}
}

func TestPlayer_Close(t *testing.T) {
	sink := &fakeSink{}
	open, _ := countingOpener(sink, nil)
	p := NewPlayer(testRate, 1, open)

	if err := p.Close(); err != nil {
		t.Errorf("closing unopened player: %v", err)
	}
	if sink.closed {
		t.Error("unopened output should not be closed")
	}

	p.PlayBuzzer()
	if err := p.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
	if !sink.closed {
		t.Error("expected output to be closed")
	}
	if p.Play(CueReject) {
		t.Error("closed player should not play")
	}
}

func TestCueString(t *testing.T) {
	if CueReject.String() != "reject" || CueAccept.String() != "accept" {
		t.Errorf("unexpected names: %s %s", CueReject, CueAccept)
	}
}
