package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the time a single frame may advance the game, so a
// stalled terminal does not fast-forward through a whole attention cycle.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg carries the wall-clock time of a frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time since the previous tick, clamped to
// [0, maxFrameDelta]. The first frame counts as one tick interval.
func (m Model) frameDelta(now time.Time) time.Duration {
	if m.lastTick.IsZero() {
		return time.Second / time.Duration(m.config.TickRate)
	}
	dt := now.Sub(m.lastTick)
	if dt < 0 {
		return 0
	}
	return min(dt, maxFrameDelta)
}
