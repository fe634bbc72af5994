package greeting

// PromptPointer turns per-frame pointer samples into prompt interactions.
// It remembers whether the pointer was over each control last frame so that
// entering the negative control is told apart from resting on it.
type PromptPointer struct {
	OverNo  bool
	OverYes bool
}

// Route applies one frame of pointer input to c.
//
// hitsNo reports whether the pointer is over the negative control when that
// control sits at pos (nil is its default place). Entering it, or clicking
// while over it, rejects once; hover is then checked against the control's
// new place, so a move that lands under a still pointer does not reject
// again next frame. The negative control is drawn on top, so the positive
// one is not hit while the pointer is over it, and a click spent on a reject
// is not also an accept.
//
// Returns whether the frame accepted.
func (p *PromptPointer) Route(c *Controller, v Viewport, hitsNo func(pos *Position) bool, hitsYes, clicked bool) bool {
	over := hitsNo(c.EvasivePosition())
	if over && (!p.OverNo || clicked) {
		c.Reject(v)
		over = hitsNo(c.EvasivePosition())
		clicked = false
	}
	p.OverNo = over

	p.OverYes = !over && hitsYes
	if p.OverYes && clicked {
		p.OverYes = false
		return c.Accept()
	}
	return false
}

// Clear forgets hover state, for when the prompt is shown again
func (p *PromptPointer) Clear() {
	*p = PromptPointer{}
}
