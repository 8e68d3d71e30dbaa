package kiss

import (
	"time"

	"github.com/vovakirdan/secret-kiss/internal/core"
)

// Caught reports whether the principal sees the couple kissing.
func Caught(phase Phase, active bool) bool {
	return phase == PhaseDanger && active
}

// ActionController tracks whether the player is kissing.
type ActionController struct {
	s      *Session
	active bool
	since  time.Duration
	held   time.Duration
}

func newActionController(s *Session) *ActionController {
	return &ActionController{s: s}
}

// Active reports whether the action is held.
func (a *ActionController) Active() bool {
	return a.active
}

// Held returns the total time spent kissing this session, including the
// current hold.
func (a *ActionController) Held() time.Duration {
	if a.active {
		return a.held + a.s.sched.Now() - a.since
	}
	return a.held
}

// Press starts kissing. It is ignored outside Playing. Pressing while the
// principal is already looking is a catch and never activates.
func (a *ActionController) Press() {
	if a.s.mode != ModePlaying {
		return
	}
	if Caught(a.s.principal.Phase(), true) {
		a.s.caught("pressed while watched")
		return
	}
	if a.active {
		return
	}

	a.active = true
	a.since = a.s.sched.Now()
	a.s.score.Start()
	a.s.loop(core.CueKiss)
}

// Release stops kissing. It is always safe to call.
func (a *ActionController) Release() {
	a.s.score.Stop()
	if !a.active {
		return
	}
	a.active = false
	a.held += a.s.sched.Now() - a.since
	a.s.stop(core.CueKiss)
}

func (a *ActionController) reset() {
	a.active = false
	a.since = 0
	a.held = 0
}
