package kiss

import (
	"github.com/vovakirdan/secret-kiss/internal/clock"
	"github.com/vovakirdan/secret-kiss/internal/core"
)

// Principal cycles Safe -> Warning -> Danger -> Safe on randomized timers.
// At most one timer is pending at a time. A catch freezes the cycle until
// the next Start.
type Principal struct {
	s      *Session
	phase  Phase
	timer  *clock.Timer
	frozen bool
	cycles int
}

func newPrincipal(s *Session) *Principal {
	return &Principal{s: s, phase: PhaseSafe}
}

// Phase returns the current attention phase.
func (p *Principal) Phase() Phase {
	return p.phase
}

// Frozen reports whether a catch stopped the cycle.
func (p *Principal) Frozen() bool {
	return p.frozen
}

// Cycles returns how many full Danger -> Safe returns happened since Start.
func (p *Principal) Cycles() int {
	return p.cycles
}

// Start cancels any pending timer, returns to Safe and arms the first turn.
func (p *Principal) Start() {
	p.cancel()
	p.frozen = false
	p.cycles = 0
	p.phase = PhaseSafe
	p.armSafe()
}

// Halt cancels the pending timer and stops the cycle. The phase is kept so
// the last posture stays visible.
func (p *Principal) Halt() {
	p.cancel()
	p.frozen = true
}

func (p *Principal) cancel() {
	p.timer.Stop()
	p.timer = nil
}

func (p *Principal) armSafe() {
	lo, hi := p.s.cfg.Principal.SafeRange()
	p.timer = p.s.sched.AfterFunc(uniformDuration(p.s.rng, lo, hi), p.enterWarning)
}

func (p *Principal) enterWarning() {
	if p.frozen {
		return
	}
	p.setPhase(PhaseWarning)
	p.s.play(core.CueWarning)
	p.timer = p.s.sched.AfterFunc(p.s.cfg.Principal.Warning(), p.enterDanger)
}

func (p *Principal) enterDanger() {
	if p.frozen {
		return
	}
	p.setPhase(PhaseDanger)
	p.s.play(core.CueAlert)

	if Caught(p.phase, p.s.action.Active()) {
		p.frozen = true
		p.timer = nil
		p.s.caught("turned around")
		return
	}

	lo, hi := p.s.cfg.Principal.DangerRange()
	p.timer = p.s.sched.AfterFunc(uniformDuration(p.s.rng, lo, hi), p.expireDanger)
}

func (p *Principal) expireDanger() {
	if p.frozen {
		return
	}
	if Caught(p.phase, p.s.action.Active()) {
		p.frozen = true
		p.timer = nil
		p.s.caught("still watching")
		return
	}

	p.setPhase(PhaseSafe)
	p.cycles++
	p.armSafe()
}

func (p *Principal) setPhase(next Phase) {
	p.s.log.Debug("principal", "from", p.phase, "to", next, "at", p.s.sched.Now())
	p.phase = next
}
