package kiss

import (
	"time"

	"github.com/vovakirdan/secret-kiss/internal/core"
)

// Game adapts a Session to the frame loop: it turns input frames into
// press/release calls and draws the hallway.
type Game struct {
	session *Session
	config  core.RuntimeConfig
}

// New creates a game around a fresh session. Call Reset to start playing.
func New(opts Options) *Game {
	return &Game{
		session: NewSession(opts),
		config:  core.DefaultConfig(),
	}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "kiss"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Secret Kiss"
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Reset starts a new round with the given screen configuration.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.session.Reset()
}

// Resize updates the screen size without touching the round.
func (g *Game) Resize(w, h int) {
	g.config.ScreenW = w
	g.config.ScreenH = h
}

// Step applies this frame's actions in order, then advances time by dt.
// On the game-over screen a press or restart begins a new round.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		switch a {
		case core.ActionPress:
			if g.session.Mode() == ModeGameOver {
				g.session.Reset()
				continue
			}
			g.session.Press()
		case core.ActionRelease:
			g.session.Release()
		case core.ActionRestart:
			if g.session.Mode() == ModeGameOver {
				g.session.Reset()
			}
		}
	}

	g.session.Step(dt)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Best:     g.session.Best(),
		GameOver: g.session.Mode() == ModeGameOver,
	}
}

// Close stops the session's timers and loop cues.
func (g *Game) Close() {
	g.session.Close()
}
