package greeting

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/valentine/internal/config"
)

// Viewport is the live drawable size in pixels
type Viewport struct {
	Width  float64
	Height float64
}

// Position is a top-left corner in viewport pixels
type Position struct {
	X float64
	Y float64
}

// EvadePosition picks a random spot for the negative control that keeps it
// on screen. Each axis is drawn independently and floored at the minimum
// offset, which also covers viewports smaller than the margin.
func EvadePosition(v Viewport, rng *rand.Rand) Position {
	maxX := v.Width - config.EvadeMargin
	maxY := v.Height - config.EvadeMargin

	return Position{
		X: math.Max(config.EvadeMinOffset, rng.Float64()*maxX),
		Y: math.Max(config.EvadeMinOffset, rng.Float64()*maxY),
	}
}
