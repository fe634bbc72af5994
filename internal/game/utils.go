package game

import (
	"image/color"

	"github.com/iburimskiy/valentine/internal/config"
)

// withAlpha fades a colour; color.RGBA is premultiplied so every channel scales
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := config.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
