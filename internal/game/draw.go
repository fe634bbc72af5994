package game

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/valentine/internal/greeting"
)

var (
	colorBackground = color.RGBA{R: 0xff, G: 0xfa, B: 0xfa, A: 0xff}
	colorInk        = color.RGBA{R: 0x29, G: 0x25, B: 0x24, A: 0xff}
	colorMuted      = color.RGBA{R: 0xa8, G: 0xa2, B: 0x9e, A: 0xff}
	colorFaint      = color.RGBA{R: 0xd6, G: 0xd3, B: 0xd1, A: 0xff}
	colorRed        = color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	colorRedDark    = color.RGBA{R: 0xb9, G: 0x1c, B: 0x1c, A: 0xff}
	colorRose       = color.RGBA{R: 0xe1, G: 0x1d, B: 0x48, A: 0xff}
	colorBorder     = color.RGBA{R: 0xfe, G: 0xe2, B: 0xe2, A: 0x80}
	colorCard       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorShadow     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x18}

	// pink-200, red-200, pink-300
	heartTints = [greeting.HeartColors]color.RGBA{
		{R: 0xfb, G: 0xcf, B: 0xe8, A: 0xff},
		{R: 0xfe, G: 0xca, B: 0xca, A: 0xff},
		{R: 0xf9, G: 0xa8, B: 0xd4, A: 0xff},
	}
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// fillPath fills a closed path with a solid colour
func fillPath(dst *ebiten.Image, path *vector.Path, c color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)

	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.FillRule = ebiten.NonZero
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// heartPath is a heart of the given width centred on (cx, cy)
func heartPath(cx, cy, size float32) *vector.Path {
	var p vector.Path
	p.MoveTo(cx, cy+0.35*size)
	p.CubicTo(cx-0.55*size, cy-0.05*size, cx-0.35*size, cy-0.5*size, cx, cy-0.2*size)
	p.CubicTo(cx+0.35*size, cy-0.5*size, cx+0.55*size, cy-0.05*size, cx, cy+0.35*size)
	p.Close()
	return &p
}

// roundRectPath is an axis-aligned rectangle with rounded corners
func roundRectPath(r rect, radius float32) *vector.Path {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	radius = min(radius, w/2, h/2)

	var p vector.Path
	p.MoveTo(x+radius, y)
	p.LineTo(x+w-radius, y)
	p.ArcTo(x+w, y, x+w, y+radius, radius)
	p.LineTo(x+w, y+h-radius)
	p.ArcTo(x+w, y+h, x+w-radius, y+h, radius)
	p.LineTo(x+radius, y+h)
	p.ArcTo(x, y+h, x, y+h-radius, radius)
	p.LineTo(x, y+radius)
	p.ArcTo(x, y, x+radius, y, radius)
	p.Close()
	return &p
}

// rotatedRectPath is r turned by angle radians about its centre
func rotatedRectPath(r rect, angle float64) *vector.Path {
	cx, cy := r.centerX(), r.centerY()
	sin, cos := math.Sincos(angle)
	corner := func(dx, dy float64) (float32, float32) {
		return float32(cx + dx*cos - dy*sin), float32(cy + dx*sin + dy*cos)
	}

	var p vector.Path
	p.MoveTo(corner(-r.W/2, -r.H/2))
	p.LineTo(corner(r.W/2, -r.H/2))
	p.LineTo(corner(r.W/2, r.H/2))
	p.LineTo(corner(-r.W/2, r.H/2))
	p.Close()
	return &p
}

// drawText draws s horizontally centred on cx with its top at y
func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, cx, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// drawWrapped centres s on cx, breaking lines so none is wider than width.
// Returns the y below the last line.
func drawWrapped(dst *ebiten.Image, s string, face *text.GoTextFace, cx, y, width float64, c color.Color) float64 {
	lineHeight := face.Size * 1.5
	var line string
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if w, _ := text.Measure(candidate, face, 0); w > width && line != "" {
			drawText(dst, line, face, cx, y, c)
			y += lineHeight
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		drawText(dst, line, face, cx, y, c)
		y += lineHeight
	}
	return y
}

// drawBackground fills the page and draws the floating hearts
func (g *Game) drawBackground(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	now := g.clock.Now()
	w, h := float64(g.width), float64(g.height)
	for _, heart := range g.hearts.Hearts() {
		age := now.Sub(heart.Born)
		progress := math.Mod(float64(age), float64(heart.Duration)) / float64(heart.Duration)

		x := heart.Left * w
		y := h + heart.Size - progress*(h+2*heart.Size)
		alpha := 0.8 * math.Sin(math.Pi*progress)

		fillPath(screen, heartPath(float32(x), float32(y), float32(heart.Size)), withAlpha(heartTints[heart.Color], alpha))
	}
}

// drawFrame is the thin rounded border inset from the window edge
func (g *Game) drawFrame(screen *ebiten.Image) {
	r := rect{X: 24, Y: 24, W: float64(g.width) - 48, H: float64(g.height) - 48}
	if r.W <= 0 || r.H <= 0 {
		return
	}
	var op vector.StrokeOptions
	op.Width = 1
	op.LineJoin = vector.LineJoinRound
	vs, is := roundRectPath(r, 48).AppendVerticesAndIndicesForStroke(nil, nil, &op)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(colorBorder.R) / 0xff
		vs[i].ColorG = float32(colorBorder.G) / 0xff
		vs[i].ColorB = float32(colorBorder.B) / 0xff
		vs[i].ColorA = float32(colorBorder.A) / 0xff
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (g *Game) drawPrompt(screen *ebiten.Image) {
	w, h := float64(g.width), float64(g.height)
	lay := newPromptLayout(w, h)
	cx := w / 2

	// Pulsing heart, swelling with whatever is playing
	beat := 1 + 0.06*math.Sin(float64(g.frames)/60*math.Pi*2) + 0.8*g.level
	fillPath(screen, heartPath(float32(cx), float32(lay.heartY), float32(64*beat)), colorRed)

	drawText(screen, g.settings.Asker+" "+g.settings.Question, g.faces.headline, cx, lay.questionY, colorInk)
	drawText(screen, "Valentine?", g.faces.accent, cx, lay.accentY, colorRed)

	// Yes grows under the cursor
	yes := lay.yes
	fill := colorRed
	if g.pointer.OverYes {
		yes = centered(yes.centerX(), yes.centerY(), yes.W*1.1, yes.H*1.1)
		fill = colorRedDark
	}
	shadow := yes
	shadow.Y += 12
	fillPath(screen, roundRectPath(shadow, float32(shadow.H/2)), withAlpha(colorRed, 0.25))
	fillPath(screen, roundRectPath(yes, float32(yes.H/2)), fill)
	_, th := text.Measure("YES", g.faces.button, 0)
	drawText(screen, "YES", g.faces.button, yes.centerX(), yes.centerY()-th/2, color.White)

	g.drawNoButton(screen, lay)
}

func (g *Game) drawNoButton(screen *ebiten.Image, lay promptLayout) {
	pos := g.ctrl.EvasivePosition()
	no := lay.noButton(pos)

	label := colorMuted
	if g.pointer.OverNo {
		label = colorInk
	}
	if pos != nil {
		// Lifted out of the layout: card with a shadow
		shadow := no
		shadow.X += 2
		shadow.Y += 4
		fillPath(screen, roundRectPath(shadow, 4), colorShadow)
		fillPath(screen, roundRectPath(no, 4), colorCard)
	} else {
		label = withAlpha(label, 0.4)
	}

	_, th := text.Measure("No :(", g.faces.body, 0)
	drawText(screen, "No :(", g.faces.body, no.centerX(), no.centerY()-th/2, label)
}

func (g *Game) drawAccepted(screen *ebiten.Image) {
	w, h := float64(g.width), float64(g.height)
	lay := newAcceptedLayout(w, h)
	cx := w / 2

	answerW, _ := text.Measure(g.settings.Answer, g.faces.accent, 0)
	drawText(screen, g.settings.Answer, g.faces.accent, cx-32, lay.answerY, colorInk)
	fillPath(screen, heartPath(float32(cx+answerW/2+8), float32(lay.answerY+40), 56), colorRed)

	g.drawPhoto(screen, lay.photo)

	drawText(screen, g.settings.Caption, g.faces.quote, cx, lay.captionY, colorMuted)
	drawText(screen, "\"Forever yours - "+g.settings.Sender+"\"", g.faces.quote, cx, lay.quoteY, colorRose)
	drawWrapped(screen, g.settings.Message, g.faces.body, cx, lay.messageY, math.Min(520, w-80), colorMuted)

	reset := colorFaint
	if g.resetHovered {
		reset = colorMuted
	}
	drawText(screen, "B A C K   T O   S T A R T", g.faces.small, lay.reset.centerX(), lay.reset.Y+6, reset)
	vector.StrokeLine(screen,
		float32(lay.reset.X+12), float32(lay.reset.Y+lay.reset.H),
		float32(lay.reset.X+lay.reset.W-12), float32(lay.reset.Y+lay.reset.H),
		1, reset, true)

	if g.debug {
		drawText(screen, "P: choose another photo", g.faces.small, cx, lay.photo.Y+lay.photo.H+40, colorFaint)
	}
}

// tilt of the photo card, radians
const photoTilt = -2 * math.Pi / 180

func (g *Game) drawPhoto(screen *ebiten.Image, frame rect) {
	if frame.W <= 0 || frame.H <= 0 {
		return
	}
	card := rect{X: frame.X - 12, Y: frame.Y - 12, W: frame.W + 24, H: frame.H + 60}
	shadow := card
	shadow.X += 6
	shadow.Y += 14
	fillPath(screen, rotatedRectPath(shadow, photoTilt), colorShadow)
	fillPath(screen, rotatedRectPath(card, photoTilt), colorCard)

	img := g.photo.image
	if img == nil {
		fillPath(screen, rotatedRectPath(frame, photoTilt), colorFaint)
		msg := "loading..."
		if g.photo.err != nil {
			msg = "no photo"
		}
		drawText(screen, msg, g.faces.body, frame.centerX(), frame.centerY()-10, colorMuted)
		return
	}

	// Cover the frame: crop the source to the frame's aspect
	crop, ok := greeting.CoverCrop(img.Bounds(), frame.W, frame.H)
	if !ok {
		return
	}
	sub := img.SubImage(crop).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(frame.W/float64(crop.Dx()), frame.H/float64(crop.Dy()))
	op.GeoM.Translate(-frame.W/2, -frame.H/2)
	op.GeoM.Rotate(photoTilt)
	// Rotate about the card centre so photo and card stay aligned
	dx, dy := frame.centerX()-card.centerX(), frame.centerY()-card.centerY()
	sin, cos := math.Sincos(photoTilt)
	op.GeoM.Translate(card.centerX()+dx*cos-dy*sin, card.centerY()+dx*sin+dy*cos)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sub, op)
}

func (g *Game) drawConfetti(screen *ebiten.Image) {
	for _, p := range g.confetti.Pieces() {
		size := p.Size
		// Tumbling pieces flatten as they turn edge-on
		h := size * math.Abs(math.Cos(p.Tilt()))
		c := withAlpha(p.Color(), p.Alpha())
		vector.DrawFilledRect(screen, float32(p.X-size/2), float32(p.Y-h/2), float32(size), float32(math.Max(h, 1)), c, false)
	}
}
