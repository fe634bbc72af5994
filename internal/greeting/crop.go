package greeting

import "image"

// CoverCrop returns the centred part of src with the aspect of a w x h frame,
// so that scaling it to the frame covers it without distortion.
// ok is false when the frame or the source has no area.
func CoverCrop(src image.Rectangle, w, h float64) (crop image.Rectangle, ok bool) {
	if w <= 0 || h <= 0 || src.Empty() {
		return image.Rectangle{}, false
	}

	sw, sh := float64(src.Dx()), float64(src.Dy())
	if sw/sh > w/h {
		cw := max(1, int(sh*w/h))
		x0 := src.Min.X + (src.Dx()-cw)/2
		return image.Rect(x0, src.Min.Y, x0+cw, src.Max.Y), true
	}
	ch := max(1, int(sw*h/w))
	y0 := src.Min.Y + (src.Dy()-ch)/2
	return image.Rect(src.Min.X, y0, src.Max.X, y0+ch), true
}
