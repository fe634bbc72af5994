package game

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/valentine/internal/audio"
	"github.com/iburimskiy/valentine/internal/config"
)

// speakerSink feeds cues into one long-running mixer on the system speaker
type speakerSink struct {
	mixer *beep.Mixer
}

func (s *speakerSink) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *speakerSink) Close() error {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}

// openSpeaker initialises the speaker and routes everything through the tap
// so the prompt heart can follow the sound
func (g *Game) openSpeaker(rate beep.SampleRate) (audio.Sink, error) {
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	mixer := &beep.Mixer{}
	g.tap = audio.NewTap(mixer, config.VisualRingSize)
	speaker.Play(g.tap)
	return &speakerSink{mixer: mixer}, nil
}
