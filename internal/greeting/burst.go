package greeting

import (
	"math/rand"
	"time"

	"github.com/iburimskiy/valentine/internal/config"
)

// Origin is a burst source as fractions of the viewport.
// Y may be slightly negative, placing the source above the top edge.
type Origin struct {
	X float64
	Y float64
}

// Emission is one burst tick: Count particles from each origin
type Emission struct {
	At      time.Time
	Count   float64
	Origins [2]Origin
}

// ParticleCount is the per-origin particle count with timeLeft remaining of
// the burst; it falls linearly to zero at expiry.
func ParticleCount(timeLeft time.Duration) float64 {
	return config.BurstMaxParticles * (float64(timeLeft) / float64(config.BurstDuration))
}

// Burst is a running celebration schedule.
// It ends only by its own expiry check; nothing else cancels it.
type Burst struct {
	sched *Scheduler
	rng   *rand.Rand
	emit  func(Emission)
	end   time.Time
	task  TaskID
	ticks int // fired so far, including the expiring tick
	done  bool
}

// StartBurst schedules a burst ending BurstDuration from now
func StartBurst(sched *Scheduler, rng *rand.Rand, emit func(Emission)) *Burst {
	b := &Burst{
		sched: sched,
		rng:   rng,
		emit:  emit,
		end:   sched.Now().Add(config.BurstDuration),
	}
	b.task = sched.Every(config.BurstInterval, b.tick)
	return b
}

func (b *Burst) tick(now time.Time) {
	b.ticks++
	timeLeft := b.end.Sub(now)
	if timeLeft <= 0 {
		b.done = true
		b.sched.Cancel(b.task)
		return
	}

	e := Emission{
		At:    now,
		Count: ParticleCount(timeLeft),
		Origins: [2]Origin{
			{X: randomInRange(b.rng, 0.1, 0.3), Y: b.rng.Float64() - 0.2},
			{X: randomInRange(b.rng, 0.7, 0.9), Y: b.rng.Float64() - 0.2},
		},
	}
	if b.emit != nil {
		b.emit(e)
	}
}

// Done reports whether the burst has expired
func (b *Burst) Done() bool {
	return b.done
}

func randomInRange(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}
