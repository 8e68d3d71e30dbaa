package kiss

import (
	"github.com/vovakirdan/secret-kiss/internal/clock"
)

// ScoreClock adds a point every interval while the action is held and
// writes every new best straight through to the store.
type ScoreClock struct {
	s      *Session
	score  int
	best   int
	prior  int // best at session start
	ticker *clock.Timer
}

func newScoreClock(s *Session) *ScoreClock {
	c := &ScoreClock{s: s}
	c.best = c.loadBest()
	c.prior = c.best
	return c
}

func (c *ScoreClock) loadBest() int {
	v, ok, err := c.s.store.Get(c.s.cfg.StoreKey)
	if err != nil {
		c.s.log.Warn("best score unreadable, starting from 0", "key", c.s.cfg.StoreKey, "err", err)
		return 0
	}
	if !ok || v < 0 {
		return 0
	}
	return v
}

// Score returns the current session score.
func (c *ScoreClock) Score() int {
	return c.score
}

// Best returns the best score ever reached.
func (c *ScoreClock) Best() int {
	return c.best
}

// NewBest reports whether this session beat the best it started with.
func (c *ScoreClock) NewBest() bool {
	return c.best > c.prior && c.score == c.best
}

// Running reports whether the clock is ticking.
func (c *ScoreClock) Running() bool {
	return c.ticker.Active()
}

// Start begins ticking. The first point lands one interval from now.
func (c *ScoreClock) Start() {
	if c.ticker.Active() {
		return
	}
	c.ticker = c.s.sched.Every(c.s.cfg.Score.Interval(), c.tick)
}

// Stop halts ticking immediately.
func (c *ScoreClock) Stop() {
	c.ticker.Stop()
	c.ticker = nil
}

func (c *ScoreClock) tick() {
	if c.s.mode != ModePlaying || !c.s.action.Active() {
		c.Stop()
		return
	}

	c.score++
	if c.score <= c.best {
		return
	}

	if c.best == c.prior {
		c.s.log.Info("new best score", "previous", c.prior)
	}
	c.best = c.score
	if err := c.s.store.Raise(c.s.cfg.StoreKey, c.best); err != nil {
		c.s.log.Warn("best score not saved", "score", c.best, "err", err)
	}
}

// reset starts a new round. The stored best is read again because another
// session sharing the store may have raised it.
func (c *ScoreClock) reset() {
	c.Stop()
	c.score = 0
	if stored := c.loadBest(); stored > c.best {
		c.best = stored
	}
	c.prior = c.best
}
