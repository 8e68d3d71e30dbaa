// Package kiss implements Secret Kiss, a hold-to-score reflex game.
// The player holds a press to kiss while the principal periodically turns
// around; being caught kissing while the principal looks ends the round.
//
// All timing runs on a clock.Scheduler advanced by the frame loop, so the
// whole game is single-threaded and can be stepped exactly in tests.
package kiss

import (
	"time"

	"github.com/vovakirdan/secret-kiss/internal/core"
)

// Phase is the principal's attention posture.
type Phase int

const (
	PhaseSafe    Phase = iota // Back turned
	PhaseWarning              // About to turn around
	PhaseDanger               // Looking at the hallway
)

func (p Phase) String() string {
	switch p {
	case PhaseSafe:
		return "safe"
	case PhaseWarning:
		return "warning"
	case PhaseDanger:
		return "danger"
	default:
		return "unknown"
	}
}

// Mode is the session's top-level state.
type Mode int

const (
	ModePlaying Mode = iota
	ModeGameOver
)

func (m Mode) String() string {
	if m == ModeGameOver {
		return "game_over"
	}
	return "playing"
}

// Rand is the random source used for delays, messages and heart velocities.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// uniform draws from [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// uniformDuration draws a duration from [lo, hi).
func uniformDuration(r Rand, lo, hi time.Duration) time.Duration {
	return lo + time.Duration(r.Float64()*float64(hi-lo))
}

// AudioSink receives cue requests. Errors are logged by the caller and never
// change game state.
type AudioSink interface {
	Loop(core.Cue) error
	Stop(core.Cue) error
	Play(core.Cue) error
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) Loop(core.Cue) error { return nil }
func (NopAudio) Stop(core.Cue) error { return nil }
func (NopAudio) Play(core.Cue) error { return nil }

// BestScoreStore persists the best score under a fixed key.
// ok is false when nothing has been stored yet. Raise never lowers the
// stored value, which keeps it the maximum when sessions share a store.
type BestScoreStore interface {
	Get(key string) (value int, ok bool, err error)
	Raise(key string, value int) error
}

// MemoryStore is a BestScoreStore kept in process memory.
type MemoryStore struct {
	values map[string]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

func (m *MemoryStore) Get(key string) (int, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Raise(key string, value int) error {
	if cur, ok := m.values[key]; !ok || value > cur {
		m.values[key] = value
	}
	return nil
}
