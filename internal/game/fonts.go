package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

type faces struct {
	headline *text.GoTextFace
	accent   *text.GoTextFace
	button   *text.GoTextFace
	quote    *text.GoTextFace
	body     *text.GoTextFace
	small    *text.GoTextFace
}

func loadFaces() (*faces, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	italic, err := text.NewGoTextFaceSource(bytes.NewReader(goitalic.TTF))
	if err != nil {
		return nil, fmt.Errorf("load italic font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}

	return &faces{
		headline: &text.GoTextFace{Source: regular, Size: 48},
		accent:   &text.GoTextFace{Source: italic, Size: 64},
		button:   &text.GoTextFace{Source: bold, Size: 36},
		quote:    &text.GoTextFace{Source: italic, Size: 28},
		body:     &text.GoTextFace{Source: regular, Size: 18},
		small:    &text.GoTextFace{Source: regular, Size: 12},
	}, nil
}
