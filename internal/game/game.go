package game

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/valentine/internal/audio"
	"github.com/iburimskiy/valentine/internal/confetti"
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/greeting"
)

// Options configures a new Game
type Options struct {
	Settings config.Settings
	Seed     int64
	Debug    bool
}

// Game is the ebiten front end for the greeting
type Game struct {
	settings config.Settings
	debug    bool
	faces    *faces

	// logic
	clock    greeting.Clock
	sched    *greeting.Scheduler
	ctrl     *greeting.Controller
	hearts   *greeting.HeartField
	confetti *confetti.Field

	// audio
	player *audio.Player
	tap    *audio.Tap
	level  float64

	photo *photo

	// live viewport
	width  int
	height int

	// input
	prevKey      map[ebiten.Key]bool
	pointer      greeting.PromptPointer
	resetHovered bool

	frames uint64
}

// New builds the game; the window is not opened until ebiten.RunGame
func New(opts Options) (*Game, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	clock := greeting.SystemClock{}
	sched := greeting.NewScheduler(clock)

	g := &Game{
		settings: opts.Settings,
		debug:    opts.Debug,
		faces:    f,
		clock:    clock,
		sched:    sched,
		hearts:   greeting.NewHeartField(sched, rng),
		confetti: confetti.NewField(rng),
		photo:    newPhoto(),
		width:    config.WindowWidth,
		height:   config.WindowHeight,
		prevKey:  map[ebiten.Key]bool{},
	}

	g.player = audio.NewPlayer(beep.SampleRate(config.SampleRate), opts.Settings.MasterVolume, g.openSpeaker)
	g.player.SetMuted(opts.Settings.Mute)
	g.loadOverrides()

	g.ctrl = greeting.NewController(sched, rng, g.player, g.emit)
	g.photo.load(opts.Settings.Photo)
	return g, nil
}

func (g *Game) loadOverrides() {
	overrides := []struct {
		cue  audio.Cue
		path string
	}{
		{audio.CueAccept, g.settings.AcceptSound},
		{audio.CueReject, g.settings.RejectSound},
	}
	for _, o := range overrides {
		if o.path == "" {
			continue
		}
		buf, err := audio.LoadCue(o.path, g.player.SampleRate())
		if err != nil {
			log.Printf("%s sound override ignored: %v", o.cue, err)
			continue
		}
		g.player.Override(o.cue, buf)
	}
}

// emit turns a burst tick into confetti thrown from both origins
func (g *Game) emit(e greeting.Emission) {
	count := int(math.Floor(e.Count))
	for _, o := range e.Origins {
		g.confetti.Emit(o.X*float64(g.width), o.Y*float64(g.height), count)
	}
}

func (g *Game) viewport() greeting.Viewport {
	return greeting.Viewport{Width: float64(g.width), Height: float64(g.height)}
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.sched.Advance()

	mouseX, mouseY := ebiten.CursorPosition()
	mx, my := float64(mouseX), float64(mouseY)
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	w, h := float64(g.width), float64(g.height)

	switch g.ctrl.Screen() {
	case greeting.AwaitingResponse:
		lay := newPromptLayout(w, h)
		hitsNo := func(pos *greeting.Position) bool {
			return lay.noButton(pos).contains(mx, my)
		}
		g.pointer.Route(g.ctrl, g.viewport(), hitsNo, lay.yes.contains(mx, my), clicked)

	case greeting.Accepted:
		lay := newAcceptedLayout(w, h)
		g.resetHovered = lay.reset.contains(mx, my)
		if g.resetHovered && clicked {
			g.ctrl.Reset()
			g.resetHovered = false
			g.pointer.Clear()
		}
		if justPressed(ebiten.KeyP) {
			g.photo.pick()
		}
	}

	if justPressed(ebiten.KeyM) {
		on := g.player.ToggleMute()
		log.Printf("sound on: %v", on)
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.photo.poll()
	g.confetti.Step()
	g.updateLevel()
	g.frames++

	return nil
}

func (g *Game) updateLevel() {
	if g.tap == nil {
		return
	}
	// Smooth with previous value
	g.level = config.SmoothingFactor*g.level + (1-config.SmoothingFactor)*g.tap.Level(1024)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	switch g.ctrl.Screen() {
	case greeting.AwaitingResponse:
		g.drawPrompt(screen)
	case greeting.Accepted:
		g.drawAccepted(screen)
	}

	g.drawConfetti(screen)
	g.drawFrame(screen)

	if g.debug {
		status := fmt.Sprintf("screen=%s rejections=%d hearts=%d confetti=%d celebrating=%v muted=%v tps=%0.1f",
			g.ctrl.Screen(), g.ctrl.Rejections(), len(g.hearts.Hearts()), g.confetti.Len(),
			g.ctrl.Celebrating(), g.player.IsMuted(), ebiten.ActualTPS())
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

// Layout reports the window size as the viewport, so dodging always uses the live size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close stops the background hearts and releases the audio output
func (g *Game) Close() error {
	g.hearts.Close()
	return g.player.Close()
}
