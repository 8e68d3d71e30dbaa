package clock

import (
	"testing"
	"time"
)

func TestAfterFuncFiresAtDueTime(t *testing.T) {
	s := New()
	var firedAt time.Duration = -1
	s.AfterFunc(100*time.Millisecond, func() { firedAt = s.Now() })

	s.Advance(99 * time.Millisecond)
	if firedAt != -1 {
		t.Fatalf("timer fired early at %v", firedAt)
	}

	s.Advance(1 * time.Millisecond)
	if firedAt != 100*time.Millisecond {
		t.Errorf("timer fired at %v, expected 100ms", firedAt)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after one-shot fired, expected 0", s.Pending())
	}
}

func TestTimersFireInDueOrder(t *testing.T) {
	s := New()
	var order []string
	s.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	s.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })
	s.AfterFunc(20*time.Millisecond, func() { order = append(order, "b2") })

	s.Advance(time.Second)

	expected := []string{"a", "b", "b2", "c"}
	if len(order) != len(expected) {
		t.Fatalf("fired %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("order[%d] = %q, expected %q", i, order[i], expected[i])
		}
	}
	if s.Now() != time.Second {
		t.Errorf("Now() = %v, expected 1s", s.Now())
	}
}

func TestStopPreventsFiring(t *testing.T) {
	s := New()
	fired := false
	timer := s.AfterFunc(50*time.Millisecond, func() { fired = true })

	if !timer.Active() {
		t.Fatal("new timer should be active")
	}
	if !timer.Stop() {
		t.Error("Stop() on a pending timer should return true")
	}
	if timer.Stop() {
		t.Error("second Stop() should return false")
	}

	s.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}

func TestNilTimerStop(t *testing.T) {
	var timer *Timer
	if timer.Stop() {
		t.Error("Stop() on nil timer should return false")
	}
	if timer.Active() {
		t.Error("nil timer should not be active")
	}
}

func TestNestedTimersFireWithinWindow(t *testing.T) {
	s := New()
	var times []time.Duration
	s.AfterFunc(100*time.Millisecond, func() {
		times = append(times, s.Now())
		s.AfterFunc(50*time.Millisecond, func() {
			times = append(times, s.Now())
		})
	})

	s.Advance(200 * time.Millisecond)

	if len(times) != 2 {
		t.Fatalf("expected 2 firings, got %d", len(times))
	}
	if times[0] != 100*time.Millisecond || times[1] != 150*time.Millisecond {
		t.Errorf("fired at %v, expected [100ms 150ms]", times)
	}
}

func TestEveryRepeatsWithoutDrift(t *testing.T) {
	s := New()
	count := 0
	s.Every(50*time.Millisecond, func() { count++ })

	// Uneven frame sizes must not change the cadence
	steps := []time.Duration{16, 17, 33, 1, 99, 834}
	for _, ms := range steps {
		s.Advance(ms * time.Millisecond)
	}

	if s.Now() != time.Second {
		t.Fatalf("Now() = %v, expected 1s", s.Now())
	}
	if count != 20 {
		t.Errorf("Every(50ms) fired %d times in 1s, expected 20", count)
	}
}

func TestEveryStopFromCallback(t *testing.T) {
	s := New()
	count := 0
	var timer *Timer
	timer = s.Every(10*time.Millisecond, func() {
		count++
		if count == 3 {
			timer.Stop()
		}
	})

	s.Advance(time.Second)
	if count != 3 {
		t.Errorf("repeating timer fired %d times, expected 3", count)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestCancelAll(t *testing.T) {
	s := New()
	fired := 0
	a := s.AfterFunc(10*time.Millisecond, func() { fired++ })
	s.Every(10*time.Millisecond, func() { fired++ })

	s.CancelAll()
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after CancelAll, expected 0", s.Pending())
	}
	if a.Active() {
		t.Error("cancelled timer reports active")
	}

	s.Advance(time.Second)
	if fired != 0 {
		t.Errorf("%d callbacks fired after CancelAll", fired)
	}
}

func TestAdvanceNegativeIsNoop(t *testing.T) {
	s := New()
	s.Advance(10 * time.Millisecond)
	s.Advance(-5 * time.Millisecond)
	if s.Now() != 10*time.Millisecond {
		t.Errorf("Now() = %v, expected 10ms", s.Now())
	}
}
