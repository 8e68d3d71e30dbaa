package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/secret-kiss/internal/core"
)

// SoundManager owns the speaker and plays cues through a shared mixer.
// Looping cues are tracked so they can be stopped; one-shots are fire and
// forget.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	master      *effects.Volume
	loops       map[core.Cue]*beep.Ctrl
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		mixer:  mixer,
		master: newVolume(mixer, 1),
		loops:  make(map[core.Cue]*beep.Ctrl),
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	// Silence keeps the mixer alive between cues
	sm.mixer.Add(beep.Silence(-1))
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Loop starts a looping cue. A cue that is already looping keeps playing.
func (sm *SoundManager) Loop(cue core.Cue) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if _, ok := sm.loops[cue]; ok {
		return nil
	}

	s, err := NewCueStreamer(cue, sm.cfg)
	if err != nil {
		return err
	}
	ctrl := &beep.Ctrl{Streamer: s}

	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()

	sm.loops[cue] = ctrl
	return nil
}

// Stop halts a looping cue. The next Loop restarts it from the beginning.
// Stopping a cue that is not playing does nothing.
func (sm *SoundManager) Stop(cue core.Cue) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	ctrl, ok := sm.loops[cue]
	if !ok {
		return nil
	}

	// A nil streamer makes the mixer drop the ctrl
	speaker.Lock()
	ctrl.Paused = true
	ctrl.Streamer = nil
	speaker.Unlock()

	delete(sm.loops, cue)
	return nil
}

// Play fires a one-shot cue. Looping cues are routed to Loop.
func (sm *SoundManager) Play(cue core.Cue) error {
	if cue.Looping() {
		return sm.Loop(cue)
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	s, err := NewCueStreamer(cue, sm.cfg)
	if err != nil {
		return err
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// SetMuted silences or restores all output without stopping any cue.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.applyMute(muted)
}

// ToggleMute flips the mute state and returns the new value.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.applyMute(!sm.muted)
	return sm.muted
}

// applyMute must be called with sm.mu held.
func (sm *SoundManager) applyMute(muted bool) {
	sm.muted = muted
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.master.Silent = muted
}

// Muted reports whether output is silenced.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Close stops every cue and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	for _, ctrl := range sm.loops {
		ctrl.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	clear(sm.loops)
	speaker.Close()
	sm.initialized = false
}
