package kiss

import (
	"math"
	"time"

	"github.com/vovakirdan/secret-kiss/internal/config"
)

// Heart is a cosmetic particle. Coordinates are relative to the couple,
// with negative Y pointing up.
type Heart struct {
	ID     int
	X, Y   float64
	VX, VY float64
	Born   time.Duration
}

// Opacity fades the heart with vertical distance from its origin.
func (h Heart) Opacity() float64 {
	return math.Max(0, 1-math.Abs(h.Y)/100)
}

// Age returns how long the heart has existed at now.
func (h Heart) Age(now time.Duration) time.Duration {
	return now - h.Born
}

// HeartField spawns and animates hearts. It only reads the action state
// and never feeds back into scoring or catches.
type HeartField struct {
	cfg     config.HeartsConfig
	rng     Rand
	hearts  []Heart
	acc     time.Duration
	nextID  int
	spawned int
}

// NewHeartField creates an empty field.
func NewHeartField(cfg config.HeartsConfig, rng Rand) *HeartField {
	return &HeartField{cfg: cfg, rng: rng}
}

// Update advances the field by one frame ending at now. Motion and gravity
// are applied per frame; spawning and expiry use elapsed time.
func (f *HeartField) Update(now, dt time.Duration, active bool) {
	live := f.hearts[:0]
	for _, h := range f.hearts {
		h.X += h.VX
		h.Y += h.VY
		h.VY += f.cfg.Gravity
		if h.Age(now) >= f.cfg.TTL() {
			continue
		}
		live = append(live, h)
	}
	f.hearts = live

	if !active {
		f.acc = 0
		return
	}

	f.acc += dt
	for f.acc >= f.cfg.Spawn() {
		f.acc -= f.cfg.Spawn()
		f.spawn(now)
	}
}

func (f *HeartField) spawn(now time.Duration) {
	f.nextID++
	f.spawned++
	f.hearts = append(f.hearts, Heart{
		ID:   f.nextID,
		VX:   uniform(f.rng, f.cfg.VXMin, f.cfg.VXMax),
		VY:   uniform(f.rng, f.cfg.VYMin, f.cfg.VYMax),
		Born: now,
	})
}

// Hearts returns a copy of the live hearts.
func (f *HeartField) Hearts() []Heart {
	out := make([]Heart, len(f.hearts))
	copy(out, f.hearts)
	return out
}

// Len returns the number of live hearts.
func (f *HeartField) Len() int {
	return len(f.hearts)
}

// Spawned returns the number of hearts created since the last Clear.
func (f *HeartField) Spawned() int {
	return f.spawned
}

// Clear removes every heart and resets the spawn accumulator.
func (f *HeartField) Clear() {
	f.hearts = f.hearts[:0]
	f.acc = 0
	f.spawned = 0
}
