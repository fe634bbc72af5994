package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// ErrUnsupportedFormat is returned for sound files that are not wav, mp3 or flac
var ErrUnsupportedFormat = errors.New("unsupported sound format")

// Cue names a moment that has a sound
type Cue int

const (
	CueReject Cue = iota
	CueAccept
)

func (c Cue) String() string {
	switch c {
	case CueReject:
		return "reject"
	case CueAccept:
		return "accept"
	default:
		return fmt.Sprintf("cue(%d)", int(c))
	}
}

// LoadCue decodes a sound file fully into memory at the given sample rate
func LoadCue(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}
