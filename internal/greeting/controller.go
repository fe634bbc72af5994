package greeting

import (
	"log"
	"math/rand"
)

// Audio plays the two interaction cues
type Audio interface {
	PlayBuzzer()
	PlayCelebration()
}

// Controller owns the greeting's state: which screen is shown, where the
// evasive control sits and how often it has been chased.
type Controller struct {
	sched *Scheduler
	rng   *rand.Rand
	audio Audio
	emit  func(Emission)

	screen     Screen
	position   *Position
	rejections int
	bursts     []*Burst
}

// NewController creates a controller on the prompt screen.
// emit receives every celebration burst tick; audio may be nil.
func NewController(sched *Scheduler, rng *rand.Rand, audio Audio, emit func(Emission)) *Controller {
	return &Controller{
		sched:  sched,
		rng:    rng,
		audio:  audio,
		emit:   emit,
		screen: AwaitingResponse,
	}
}

// Screen returns the current screen
func (c *Controller) Screen() Screen {
	return c.screen
}

// Rejections returns how many negative interactions happened since the last reset
func (c *Controller) Rejections() int {
	return c.rejections
}

// EvasivePosition returns where the negative control was moved to, or nil
// while it still sits in its default place
func (c *Controller) EvasivePosition() *Position {
	if c.position == nil {
		return nil
	}
	p := *c.position
	return &p
}

// Accept moves to the accepted screen, starts a celebration burst and plays
// the celebration cue. It does nothing if already accepted.
func (c *Controller) Accept() bool {
	next, ok := c.screen.Next(ActionAccept)
	if !ok {
		return false
	}
	c.screen = next

	if c.audio != nil {
		c.audio.PlayCelebration()
	}
	c.bursts = append(c.bursts, StartBurst(c.sched, c.rng, c.emit))
	log.Printf("accepted after %d rejections", c.rejections)
	return true
}

// Reject handles a click on, or the pointer entering, the negative control:
// buzz, count it and move the control somewhere else in v.
func (c *Controller) Reject(v Viewport) bool {
	if c.screen != AwaitingResponse {
		return false
	}

	if c.audio != nil {
		c.audio.PlayBuzzer()
	}
	c.rejections++
	pos := EvadePosition(v, c.rng)
	c.position = &pos
	return true
}

// Reset returns to the prompt and forgets the evasion state.
// A celebration burst already running keeps going until it expires.
// Returns whether the screen changed.
func (c *Controller) Reset() bool {
	next, changed := c.screen.Next(ActionReset)
	c.screen = next
	c.rejections = 0
	c.position = nil
	return changed
}

// Celebrating reports whether any burst is still running
func (c *Controller) Celebrating() bool {
	live := c.bursts[:0]
	for _, b := range c.bursts {
		if !b.Done() {
			live = append(live, b)
		}
	}
	c.bursts = live
	return len(c.bursts) > 0
}
