package confetti

import (
	"math/rand"
	"testing"

	"github.com/iburimskiy/valentine/internal/config"
)

func TestEmitAndExpire(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(1)))
	f.Emit(100, 100, 70)
	f.Emit(700, 100, 70)

	if f.Len() != 140 {
		t.Fatalf("expected 140 pieces, got %d", f.Len())
	}

	for i := 0; i < config.ConfettiLifeTicks-1; i++ {
		f.Step()
	}
	if f.Len() != 140 {
		t.Errorf("pieces expired early: %d left", f.Len())
	}

	f.Step()
	if f.Len() != 0 {
		t.Errorf("expected all pieces gone after %d ticks, %d left", config.ConfettiLifeTicks, f.Len())
	}
}

func TestEmitZero(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(1)))
	f.Emit(0, 0, 0)
	if f.Len() != 0 {
		t.Errorf("expected no pieces, got %d", f.Len())
	}
}

func TestPiecesFadeAndFall(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(2)))
	f.Emit(400, 300, 20)

	for i, p := range f.Pieces() {
		if p.Alpha() != 1 {
			t.Errorf("fresh piece %d alpha %f", i, p.Alpha())
		}
	}

	for i := 0; i < 79; i++ {
		f.Step()
	}
	before := make([]float64, f.Len())
	for i, p := range f.Pieces() {
		before[i] = p.Y
	}
	f.Step()

	for i, p := range f.Pieces() {
		// Launch velocity has decayed away, gravity dominates
		if p.Y <= before[i] {
			t.Errorf("piece %d is not falling: %f -> %f", i, before[i], p.Y)
		}
		if a := p.Alpha(); a <= 0 || a >= 1 {
			t.Errorf("piece %d alpha %f should be fading", i, a)
		}
	}
}

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h, s, v float64
		r, g, b uint8
	}{
		{0, 1, 1, 255, 0, 0},
		{120, 1, 1, 0, 255, 0},
		{240, 1, 1, 0, 0, 255},
		{360, 1, 1, 255, 0, 0},
		{-120, 1, 1, 0, 0, 255},
		{0, 0, 1, 255, 255, 255},
	}
	for _, tt := range tests {
		r, g, b := hsvToRgb(tt.h, tt.s, tt.v)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hsvToRgb(%v,%v,%v) = %d,%d,%d want %d,%d,%d", tt.h, tt.s, tt.v, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
