package greeting

// Screen is which of the two views is shown
type Screen int

const (
	AwaitingResponse Screen = iota
	Accepted
)

func (s Screen) String() string {
	switch s {
	case AwaitingResponse:
		return "awaiting-response"
	case Accepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// Action is a screen transition trigger
type Action int

const (
	ActionAccept Action = iota
	ActionReset
)

// transitions lists every legal move; anything else leaves the screen unchanged
var transitions = map[Screen]map[Action]Screen{
	AwaitingResponse: {ActionAccept: Accepted},
	Accepted:         {ActionReset: AwaitingResponse},
}

// Next returns the screen after applying a, and whether it changed
func (s Screen) Next(a Action) (Screen, bool) {
	next, ok := transitions[s][a]
	if !ok {
		return s, false
	}
	return next, true
}
