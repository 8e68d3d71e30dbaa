package kiss

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/secret-kiss/internal/clock"
	"github.com/vovakirdan/secret-kiss/internal/config"
	"github.com/vovakirdan/secret-kiss/internal/core"
)

// Options configures a Session. Zero values select defaults.
type Options struct {
	Config    *config.KissConfig // nil uses config.DefaultKissConfig
	Rand      Rand               // nil uses a time-seeded source
	Log       *log.Logger        // nil discards
	Audio     AudioSink          // nil discards
	Store     BestScoreStore     // nil keeps the best score in memory
	Scheduler *clock.Scheduler   // nil creates a private one
}

// Session owns one player's game: the principal, the action, the score and
// the hearts. Components keep a pointer back to the session for reads and
// only mutate their own state.
type Session struct {
	cfg   config.KissConfig
	rng   Rand
	log   *log.Logger
	audio AudioSink
	store BestScoreStore
	sched *clock.Scheduler

	mode    Mode
	message string
	rounds  int

	principal *Principal
	action    *ActionController
	score     *ScoreClock
	hearts    *HeartField
}

// NewSession builds a session and loads the best score. Call Start to play.
func NewSession(opts Options) *Session {
	s := &Session{
		rng:   opts.Rand,
		log:   opts.Log,
		audio: opts.Audio,
		store: opts.Store,
		sched: opts.Scheduler,
		mode:  ModeGameOver,
	}
	if opts.Config != nil {
		s.cfg = *opts.Config
	} else {
		s.cfg = config.DefaultKissConfig()
	}
	if len(s.cfg.Messages) == 0 {
		s.cfg.Messages = config.DefaultMessages
	}
	if s.cfg.StoreKey == "" {
		s.cfg.StoreKey = config.DefaultStoreKey
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	if s.audio == nil {
		s.audio = NopAudio{}
	}
	if s.store == nil {
		s.store = NewMemoryStore()
	}
	if s.sched == nil {
		s.sched = clock.New()
	}

	s.principal = newPrincipal(s)
	s.action = newActionController(s)
	s.score = newScoreClock(s)
	s.hearts = NewHeartField(s.cfg.Hearts, s.rng)
	return s
}

// Start begins a fresh round: score 0, action released, principal back to
// Safe with new timers, hearts cleared and background music playing.
func (s *Session) Start() {
	s.sched.CancelAll()
	s.mode = ModePlaying
	s.message = ""
	s.rounds++

	s.action.reset()
	s.score.reset()
	s.hearts.Clear()

	s.stop(core.CueLose)
	s.stop(core.CueKiss)
	s.loop(core.CueBackground)

	s.principal.Start()
	s.log.Info("round started", "round", s.rounds, "best", s.score.Best())
}

// Reset is Start under the name used for restarts.
func (s *Session) Reset() {
	s.Start()
}

// GameOver ends the round. Every catch path funnels through here, and
// calls after the first are no-ops.
func (s *Session) GameOver() {
	if s.mode == ModeGameOver {
		return
	}
	s.mode = ModeGameOver
	s.message = s.pickMessage()

	s.principal.Halt()
	s.action.Release()
	s.score.Stop()

	s.stop(core.CueBackground)
	s.play(core.CueLose)

	s.log.Info("round over",
		"score", s.score.Score(),
		"best", s.score.Best(),
		"held", s.action.Held(),
		"caught", s.principal.Frozen(),
		"cycles", s.principal.Cycles(),
		"hearts", s.hearts.Spawned(),
	)
}

func (s *Session) caught(reason string) {
	if s.mode != ModePlaying {
		return
	}
	s.log.Info("caught", "reason", reason, "phase", s.principal.Phase(), "at", s.sched.Now())
	s.GameOver()
}

func (s *Session) pickMessage() string {
	msgs := s.cfg.Messages
	i := int(s.rng.Float64() * float64(len(msgs)))
	return msgs[min(max(i, 0), len(msgs)-1)]
}

// Press starts the action.
func (s *Session) Press() {
	s.action.Press()
}

// Release stops the action.
func (s *Session) Release() {
	s.action.Release()
}

// Step advances virtual time by dt: pending timers fire in order, then the
// hearts move one frame.
func (s *Session) Step(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.sched.Advance(dt)
	if s.mode == ModePlaying {
		s.hearts.Update(s.sched.Now(), dt, s.action.Active())
	}
}

// Close cancels every timer and silences the loop cues. The session must
// not be stepped afterwards.
func (s *Session) Close() {
	s.log.Debug("session closed", "rounds", s.rounds, "pending", s.sched.Pending())
	s.sched.CancelAll()
	s.principal.Halt()
	s.score.Stop()
	s.action.Release()
	s.stop(core.CueBackground)
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Phase returns the principal's phase.
func (s *Session) Phase() Phase { return s.principal.Phase() }

// Active reports whether the action is held.
func (s *Session) Active() bool { return s.action.Active() }

// Score returns the current score.
func (s *Session) Score() int { return s.score.Score() }

// Best returns the best score.
func (s *Session) Best() int { return s.score.Best() }

// Message returns the game-over message, empty while playing.
func (s *Session) Message() string { return s.message }

// Now returns the session's virtual time.
func (s *Session) Now() time.Duration { return s.sched.Now() }

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	Mode    Mode
	Score   int
	Best    int
	NewBest bool
	Phase   Phase
	Active  bool
	Message string
	Hearts  []Heart
	Held    time.Duration
	Now     time.Duration
}

// Snapshot captures the state needed to draw a frame.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Mode:    s.mode,
		Score:   s.score.Score(),
		Best:    s.score.Best(),
		NewBest: s.score.NewBest(),
		Phase:   s.principal.Phase(),
		Active:  s.action.Active(),
		Message: s.message,
		Hearts:  s.hearts.Hearts(),
		Held:    s.action.Held(),
		Now:     s.sched.Now(),
	}
}

func (s *Session) loop(c core.Cue) {
	if err := s.audio.Loop(c); err != nil {
		s.log.Warn("audio loop failed", "cue", c, "err", err)
	}
}

func (s *Session) stop(c core.Cue) {
	if err := s.audio.Stop(c); err != nil {
		s.log.Warn("audio stop failed", "cue", c, "err", err)
	}
}

func (s *Session) play(c core.Cue) {
	if err := s.audio.Play(c); err != nil {
		s.log.Warn("audio play failed", "cue", c, "err", err)
	}
}
