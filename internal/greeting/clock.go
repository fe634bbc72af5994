package greeting

import "time"

// Clock provides the current time to the scheduler
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall time
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a clock that only moves when told to, for tests and replays
type ManualClock struct {
	current time.Time
}

// NewManualClock creates a manual clock at the given start time
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the current manual time
func (c *ManualClock) Now() time.Time {
	return c.current
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
