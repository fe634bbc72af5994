package greeting

import (
	"math/rand"
	"time"

	"github.com/iburimskiy/valentine/internal/config"
)

// HeartColors is how many tints a heart can be drawn in
const HeartColors = 3

// Heart is one decorative background particle.
// Its look is fixed when it is created.
type Heart struct {
	ID       int64
	Born     time.Time
	Left     float64 // fraction of viewport width, [0, 1)
	Size     float64 // pixels
	Duration time.Duration
	Color    int
}

// HeartField keeps a rolling window of background hearts, adding one per interval
type HeartField struct {
	sched  *Scheduler
	rng    *rand.Rand
	task   TaskID
	hearts []Heart
	lastID int64
	closed bool
}

// NewHeartField starts spawning hearts on the scheduler
func NewHeartField(sched *Scheduler, rng *rand.Rand) *HeartField {
	f := &HeartField{
		sched:  sched,
		rng:    rng,
		hearts: make([]Heart, 0, config.HeartHistory+1),
	}
	f.task = sched.Every(config.HeartSpawnInterval, f.spawn)
	return f
}

func (f *HeartField) spawn(now time.Time) {
	id := now.UnixNano()
	if id <= f.lastID {
		id = f.lastID + 1
	}
	f.lastID = id

	h := Heart{
		ID:       id,
		Born:     now,
		Left:     f.rng.Float64(),
		Size:     config.HeartMinSize + f.rng.Float64()*(config.HeartMaxSize-config.HeartMinSize),
		Duration: config.HeartMinDuration + time.Duration(f.rng.Float64()*float64(config.HeartMaxDuration-config.HeartMinDuration)),
		Color:    f.rng.Intn(HeartColors),
	}

	if len(f.hearts) > config.HeartHistory {
		f.hearts = append(f.hearts[:0], f.hearts[len(f.hearts)-config.HeartHistory:]...)
	}
	f.hearts = append(f.hearts, h)
}

// Hearts returns the tracked hearts, oldest first.
// The slice is only valid until the next scheduler advance.
func (f *HeartField) Hearts() []Heart {
	return f.hearts
}

// Close stops spawning; hearts already tracked stay
func (f *HeartField) Close() {
	if f.closed {
		return
	}
	f.closed = true
	f.sched.Cancel(f.task)
}
