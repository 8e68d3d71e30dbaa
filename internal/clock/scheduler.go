// Package clock provides a virtual-time scheduler for frame-driven games.
// Time only moves when the owner calls Advance, so every delayed callback
// fires on the same goroutine as the frame loop and tests can step time
// exactly.
package clock

import (
	"container/heap"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer struct {
	sched    *Scheduler
	fn       func()
	due      time.Duration
	interval time.Duration // > 0 for repeating timers
	seq      uint64
	index    int // position in the heap, -1 when not queued
	stopped  bool
}

// Stop cancels the timer. Returns true if the call prevented a future firing.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&t.sched.queue, t.index)
		return true
	}
	return false
}

// Active reports whether the timer is still going to fire.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped && t.index >= 0
}

// Due returns the virtual time at which the timer fires next.
func (t *Timer) Due() time.Duration {
	return t.due
}

// Scheduler runs one-shot and repeating callbacks on a virtual timeline.
// It is not safe for concurrent use; all calls belong to the frame loop.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

// New creates a scheduler with its clock at zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// AfterFunc arms fn to run once after d has elapsed.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	return s.schedule(d, 0, fn)
}

// Every arms fn to run every d, starting d from now. Re-arming uses the
// previous due time, not the firing time, so the cadence does not drift.
func (s *Scheduler) Every(d time.Duration, fn func()) *Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return s.schedule(d, d, fn)
}

func (s *Scheduler) schedule(d, interval time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{
		sched:    s,
		fn:       fn,
		due:      s.now + d,
		interval: interval,
		seq:      s.seq,
		index:    -1,
	}
	heap.Push(&s.queue, t)
	return t
}

// Advance moves the clock forward by dt, firing every timer that comes due
// on the way in due order. Each callback observes Now() equal to its own due
// time. Timers armed by callbacks fire too if they fall inside the window.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&s.queue)
		s.now = next.due

		if next.interval > 0 {
			next.due += next.interval
			heap.Push(&s.queue, next)
		} else {
			next.stopped = true
		}
		next.fn()
	}

	s.now = target
}

// CancelAll stops every pending timer.
func (s *Scheduler) CancelAll() {
	for _, t := range s.queue {
		t.stopped = true
		t.index = -1
	}
	s.queue = s.queue[:0]
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}

// timerQueue is a min-heap ordered by due time, then by arming order.
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
