package game

import (
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/greeting"
)

type rect struct {
	X, Y, W, H float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r rect) centerX() float64 { return r.X + r.W/2 }
func (r rect) centerY() float64 { return r.Y + r.H/2 }

// centered returns a w x h rect centred on (cx, cy)
func centered(cx, cy, w, h float64) rect {
	return rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// promptLayout places the question screen around the viewport centre
type promptLayout struct {
	heartY    float64
	questionY float64
	accentY   float64
	yes       rect
	no        rect // in-flow place, before the control starts evading
}

func newPromptLayout(w, h float64) promptLayout {
	cx, cy := w/2, h/2
	return promptLayout{
		heartY:    cy - 220,
		questionY: cy - 150,
		accentY:   cy - 90,
		yes:       centered(cx, cy+60, config.YesButtonWidth, config.YesButtonHeight),
		no:        centered(cx, cy+180, config.NoButtonWidth, config.NoButtonHeight),
	}
}

// noButton is where the negative control is right now
func (l promptLayout) noButton(pos *greeting.Position) rect {
	if pos == nil {
		return l.no
	}
	return rect{X: pos.X, Y: pos.Y, W: config.NoButtonWidth, H: config.NoButtonHeight}
}

// acceptedLayout places the celebration screen top to bottom
type acceptedLayout struct {
	answerY  float64
	photo    rect
	captionY float64
	quoteY   float64
	messageY float64
	reset    rect
}

func newAcceptedLayout(w, h float64) acceptedLayout {
	cx := w / 2
	photoH := h * 0.42
	photoW := photoH * 3 / 4
	top := h*0.08 + 90
	photo := rect{X: cx - photoW/2, Y: top, W: photoW, H: photoH}

	return acceptedLayout{
		answerY:  h * 0.08,
		photo:    photo,
		captionY: photo.Y + photo.H + 14,
		quoteY:   photo.Y + photo.H + 70,
		messageY: photo.Y + photo.H + 116,
		reset:    centered(cx, h-48, config.ResetButtonWidth, config.ResetButtonHeight),
	}
}
