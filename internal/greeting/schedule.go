package greeting

import "time"

// TaskID identifies a scheduled task and is the handle used to cancel it
type TaskID uint64

type task struct {
	id        TaskID
	interval  time.Duration
	next      time.Time
	fn        func(now time.Time)
	cancelled bool
}

// Scheduler runs interval tasks against a clock.
// It does not own a goroutine: Advance is called from the update loop and
// fires everything that has come due, so tasks run on the caller's goroutine.
type Scheduler struct {
	clock  Clock
	tasks  []*task
	lastID TaskID
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// Now returns the scheduler's current time
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// Every runs fn once per interval, first one interval from now.
// fn receives the tick's scheduled time.
func (s *Scheduler) Every(interval time.Duration, fn func(now time.Time)) TaskID {
	if interval <= 0 {
		panic("greeting: non-positive task interval")
	}
	s.lastID++
	s.tasks = append(s.tasks, &task{
		id:       s.lastID,
		interval: interval,
		next:     s.clock.Now().Add(interval),
		fn:       fn,
	})
	return s.lastID
}

// Cancel stops a task; returns false if it was not pending
func (s *Scheduler) Cancel(id TaskID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			t.cancelled = true
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending reports how many tasks are scheduled
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance fires every tick due at the current time, earliest first.
// A task that fell several intervals behind fires once per missed interval.
// Returns the number of ticks fired.
func (s *Scheduler) Advance() int {
	now := s.clock.Now()
	fired := 0
	for {
		t := s.earliestDue(now)
		if t == nil {
			return fired
		}
		at := t.next
		t.next = t.next.Add(t.interval)
		t.fn(at)
		fired++
	}
}

func (s *Scheduler) earliestDue(now time.Time) *task {
	var due *task
	for _, t := range s.tasks {
		if t.cancelled || t.next.After(now) {
			continue
		}
		if due == nil || t.next.Before(due.next) {
			due = t
		}
	}
	return due
}
