package kiss

import (
	"errors"
	"time"

	"github.com/vovakirdan/secret-kiss/internal/core"
)

// fixedRand always returns the same value, which pins every random delay.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// recordingAudio records cue calls in order and can be made to fail.
type recordingAudio struct {
	calls []string
	fail  bool
}

func (a *recordingAudio) record(op string, c core.Cue) error {
	a.calls = append(a.calls, op+":"+c.String())
	if a.fail {
		return errors.New("device unplugged")
	}
	return nil
}

func (a *recordingAudio) Loop(c core.Cue) error { return a.record("loop", c) }
func (a *recordingAudio) Stop(c core.Cue) error { return a.record("stop", c) }
func (a *recordingAudio) Play(c core.Cue) error { return a.record("play", c) }

func (a *recordingAudio) count(call string) int {
	n := 0
	for _, c := range a.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (a *recordingAudio) last(n int) []string {
	if n > len(a.calls) {
		n = len(a.calls)
	}
	return a.calls[len(a.calls)-n:]
}

// stubStore is a BestScoreStore with injectable failures.
type stubStore struct {
	value  int
	has    bool
	getErr error
	setErr error
	sets   int
}

func (s *stubStore) Get(string) (int, bool, error) {
	if s.getErr != nil {
		return 0, false, s.getErr
	}
	return s.value, s.has, nil
}

func (s *stubStore) Raise(_ string, v int) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	if !s.has || v > s.value {
		s.value, s.has = v, true
	}
	return nil
}

func newTestSession(r float64) (*Session, *recordingAudio) {
	audio := &recordingAudio{}
	s := NewSession(Options{Rand: fixedRand(r), Audio: audio})
	s.Start()
	return s, audio
}

// advanceTo steps the session to an absolute virtual time in one frame.
func advanceTo(s *Session, t time.Duration) {
	s.Step(t - s.Now())
}

// stepFrames advances total time in fixed frames.
func stepFrames(s *Session, total, frame time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += frame {
		s.Step(min(frame, total-elapsed))
	}
}
