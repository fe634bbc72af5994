// Package confetti simulates the paper pieces thrown by a celebration burst.
package confetti

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/valentine/internal/config"
)

// palette hues, degrees
var palette = []float64{195, 265, 348, 100, 60, 33, 300}

// Piece is one confetti square
type Piece struct {
	X, Y     float64
	angle    float64
	velocity float64
	wobble   float64
	hue      float64
	tick     int
	Size     float64
}

// Alpha is the piece's opacity, fading out over its life
func (p *Piece) Alpha() float64 {
	return config.Clamp01(1 - float64(p.tick)/config.ConfettiLifeTicks)
}

// Tilt is the current rotation of the piece in radians
func (p *Piece) Tilt() float64 {
	return p.wobble
}

// Color shades the piece's hue by how far it is tilted away from the viewer
func (p *Piece) Color() color.RGBA {
	v := 0.75 + 0.25*math.Cos(p.wobble)
	r, g, b := hsvToRgb(p.hue, 0.8, v)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Field holds every live piece
type Field struct {
	rng    *rand.Rand
	pieces []Piece
}

// NewField creates an empty confetti field
func NewField(rng *rand.Rand) *Field {
	return &Field{rng: rng}
}

// Emit throws count pieces from (x, y) in pixels, spread all the way round
func (f *Field) Emit(x, y float64, count int) {
	spread := config.ConfettiSpread * math.Pi / 180
	base := -math.Pi / 2
	for i := 0; i < count; i++ {
		f.pieces = append(f.pieces, Piece{
			X:        x,
			Y:        y,
			angle:    base + (0.5*spread - f.rng.Float64()*spread),
			velocity: config.ConfettiStartVelocity*0.5 + f.rng.Float64()*config.ConfettiStartVelocity,
			wobble:   f.rng.Float64() * 10,
			hue:      palette[f.rng.Intn(len(palette))],
			Size:     6 + f.rng.Float64()*4,
		})
	}
}

// Step advances every piece by one tick and drops the expired ones
func (f *Field) Step() {
	live := f.pieces[:0]
	for _, p := range f.pieces {
		p.X += math.Cos(p.angle) * p.velocity
		p.Y += math.Sin(p.angle)*p.velocity + 3*config.ConfettiGravity
		p.velocity *= config.ConfettiDecay
		p.wobble += 0.1
		p.tick++
		if p.tick < config.ConfettiLifeTicks {
			live = append(live, p)
		}
	}
	f.pieces = live
}

// Pieces returns the live pieces; valid until the next Emit or Step
func (f *Field) Pieces() []Piece {
	return f.pieces
}

// Len is the number of live pieces
func (f *Field) Len() int {
	return len(f.pieces)
}
