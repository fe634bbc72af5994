package greeting

import (
	"image"
	"testing"
)

func TestCoverCrop(t *testing.T) {
	tests := []struct {
		name   string
		src    image.Rectangle
		w, h   float64
		want   image.Rectangle
		wantOK bool
	}{
		{"wide source trims the sides", image.Rect(0, 0, 400, 100), 100, 100, image.Rect(150, 0, 250, 100), true},
		{"tall source trims top and bottom", image.Rect(0, 0, 100, 400), 100, 100, image.Rect(0, 150, 100, 250), true},
		{"same aspect keeps everything", image.Rect(0, 0, 300, 400), 150, 200, image.Rect(0, 0, 300, 400), true},
		{"offset source stays inside", image.Rect(10, 20, 410, 120), 50, 50, image.Rect(160, 20, 260, 120), true},
		{"thin frame keeps a pixel", image.Rect(0, 0, 100, 100), 1000, 0.01, image.Rect(0, 49, 100, 50), true},
		{"zero height frame", image.Rect(0, 0, 100, 100), 100, 0, image.Rectangle{}, false},
		{"zero width frame", image.Rect(0, 0, 100, 100), 0, 100, image.Rectangle{}, false},
		{"negative frame", image.Rect(0, 0, 100, 100), -10, -10, image.Rectangle{}, false},
		{"empty source", image.Rectangle{}, 100, 100, image.Rectangle{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CoverCrop(tt.src, tt.w, tt.h)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Errorf("Expected crop %v, got %v", tt.want, got)
			}
			if ok && !got.In(tt.src) {
				t.Errorf("crop %v escapes source %v", got, tt.src)
			}
		})
	}
}
