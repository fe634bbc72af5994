package greeting

import (
	"math/rand"
	"testing"

	"github.com/iburimskiy/valentine/internal/config"
)

type fakeAudio struct {
	buzzes       int
	celebrations int
}

func (a *fakeAudio) PlayBuzzer() { a.buzzes++ }
func (a *fakeAudio) PlayCelebration() { a.celebrations++ }

type harness struct {
	clock     *ManualClock
	sched     *Scheduler
	audio     *fakeAudio
	emissions []Emission
	ctrl      *Controller
}

func newHarness(seed int64) *harness {
	h := &harness{
		clock: NewManualClock(epoch),
		audio: &fakeAudio{},
	}
	h.sched = NewScheduler(h.clock)
	h.ctrl = NewController(h.sched, rand.New(rand.NewSource(seed)), h.audio, func(e Emission) {
		h.emissions = append(h.emissions, e)
	})
	return h
}

func (h *harness) tick(n int) {
	for i := 0; i < n; i++ {
		h.clock.Advance(config.BurstInterval)
		h.sched.Advance()
	}
}

func TestController_InitialState(t *testing.T) {
	h := newHarness(1)

	if h.ctrl.Screen() != AwaitingResponse {
		t.Errorf("initial screen = %v", h.ctrl.Screen())
	}
	if h.ctrl.Rejections() != 0 {
		t.Errorf("initial rejections = %d", h.ctrl.Rejections())
	}
	if h.ctrl.EvasivePosition() != nil {
		t.Error("initial position should be unset")
	}
	if h.ctrl.Celebrating() {
		t.Error("should not be celebrating initially")
	}
}

func TestController_RejectCountsAndStaysOnScreen(t *testing.T) {
	viewports := []Viewport{
		{Width: 800, Height: 600},
		{Width: 1920, Height: 1080},
		{Width: 320, Height: 480},
		{Width: 100, Height: 50}, // smaller than the margin
		{Width: 0, Height: 0},
	}

	h := newHarness(42)
	calls := 0
	for _, v := range viewports {
		for i := 0; i < 200; i++ {
			if !h.ctrl.Reject(v) {
				t.Fatal("reject should be handled on the prompt screen")
			}
			calls++
			if h.ctrl.Rejections() != calls {
				t.Fatalf("rejections = %d after %d calls", h.ctrl.Rejections(), calls)
			}

			p := h.ctrl.EvasivePosition()
			if p == nil {
				t.Fatal("position should be set after a rejection")
			}
			maxX := max(20, v.Width-120)
			maxY := max(20, v.Height-120)
			if p.X < 20 || p.X > maxX || p.Y < 20 || p.Y > maxY {
				t.Fatalf("position %+v outside [20,%f]x[20,%f] for %+v", *p, maxX, maxY, v)
			}
		}
	}

	if h.audio.buzzes != calls {
		t.Errorf("expected %d buzzes, got %d", calls, h.audio.buzzes)
	}
}

func TestController_PositionIsACopy(t *testing.T) {
	h := newHarness(1)
	h.ctrl.Reject(Viewport{Width: 800, Height: 600})

	p := h.ctrl.EvasivePosition()
	p.X = -1
	if h.ctrl.EvasivePosition().X == -1 {
		t.Error("mutating the returned position changed controller state")
	}
}

func TestController_AcceptOnce(t *testing.T) {
	h := newHarness(1)

	if !h.ctrl.Accept() {
		t.Fatal("first accept should transition")
	}
	if h.ctrl.Screen() != Accepted {
		t.Errorf("screen = %v, want accepted", h.ctrl.Screen())
	}
	if h.ctrl.Accept() {
		t.Error("second accept should be a no-op")
	}
	if h.ctrl.Screen() != Accepted {
		t.Error("screen regressed without reset")
	}
	if h.audio.celebrations != 1 {
		t.Errorf("expected one celebration cue, got %d", h.audio.celebrations)
	}
	if h.ctrl.Reject(Viewport{Width: 800, Height: 600}) {
		t.Error("reject should be ignored on the accepted screen")
	}
}

func TestController_ResetRestoresDefaults(t *testing.T) {
	for _, rejects := range []int{0, 1, 7} {
		h := newHarness(int64(rejects))
		for i := 0; i < rejects; i++ {
			h.ctrl.Reject(Viewport{Width: 800, Height: 600})
		}
		h.ctrl.Accept()

		if !h.ctrl.Reset() {
			t.Errorf("reset after %d rejects should change screen", rejects)
		}
		if h.ctrl.Screen() != AwaitingResponse || h.ctrl.Rejections() != 0 || h.ctrl.EvasivePosition() != nil {
			t.Errorf("reset after %d rejects left screen=%v rejections=%d position=%v",
				rejects, h.ctrl.Screen(), h.ctrl.Rejections(), h.ctrl.EvasivePosition())
		}
	}
}

func TestController_ResetOnPromptClearsEvasion(t *testing.T) {
	h := newHarness(3)
	h.ctrl.Reject(Viewport{Width: 800, Height: 600})
	h.ctrl.Reject(Viewport{Width: 800, Height: 600})

	if h.ctrl.Reset() {
		t.Error("reset on the prompt screen does not change the screen")
	}
	if h.ctrl.Rejections() != 0 || h.ctrl.EvasivePosition() != nil {
		t.Error("reset should clear rejections and position")
	}
}

// Viewport 800x600 with a fixed seed: dodge, accept, then reset mid-burst.
func TestController_Scenario(t *testing.T) {
	h := newHarness(2025)
	v := Viewport{Width: 800, Height: 600}

	h.ctrl.Reject(v)
	p := h.ctrl.EvasivePosition()
	if p.X < 20 || p.X > 680 || p.Y < 20 || p.Y > 480 {
		t.Fatalf("first dodge landed at %+v", *p)
	}

	h.ctrl.Accept()
	if h.ctrl.Screen() != Accepted {
		t.Fatal("expected accepted screen")
	}

	h.tick(8)
	if len(h.emissions) != 8 {
		t.Fatalf("expected 8 emissions after 2s, got %d", len(h.emissions))
	}

	h.ctrl.Reset()
	if h.ctrl.Screen() != AwaitingResponse || h.ctrl.Rejections() != 0 || h.ctrl.EvasivePosition() != nil {
		t.Fatal("reset did not restore the prompt")
	}
	if !h.ctrl.Celebrating() {
		t.Error("burst should survive the reset")
	}

	// The burst runs its full schedule regardless of the reset
	h.tick(20)
	if len(h.emissions) != 19 {
		t.Errorf("expected all 19 emissions, got %d", len(h.emissions))
	}
	if h.ctrl.Celebrating() {
		t.Error("burst should have expired")
	}
	if h.sched.Pending() != 0 {
		t.Errorf("expected no pending tasks, got %d", h.sched.Pending())
	}
}

func TestController_NilAudio(t *testing.T) {
	c := NewController(NewScheduler(NewManualClock(epoch)), rand.New(rand.NewSource(1)), nil, nil)
	c.Reject(Viewport{Width: 800, Height: 600})
	c.Accept()
	c.Reset()
}

func TestScreenTransitions(t *testing.T) {
	tests := []struct {
		from    Screen
		action  Action
		to      Screen
		changed bool
	}{
		{AwaitingResponse, ActionAccept, Accepted, true},
		{AwaitingResponse, ActionReset, AwaitingResponse, false},
		{Accepted, ActionAccept, Accepted, false},
		{Accepted, ActionReset, AwaitingResponse, true},
	}
	for _, tt := range tests {
		to, changed := tt.from.Next(tt.action)
		if to != tt.to || changed != tt.changed {
			t.Errorf("%v.Next(%d) = %v,%v want %v,%v", tt.from, tt.action, to, changed, tt.to, tt.changed)
		}
	}
}
