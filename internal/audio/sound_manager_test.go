package audio

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/vovakirdan/secret-kiss/internal/core"
)

func TestUninitializedManager(t *testing.T) {
	sm := NewSoundManager(nil)

	if err := sm.Loop(core.CueBackground); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Loop() = %v, expected ErrNotInitialized", err)
	}
	if err := sm.Play(core.CueLose); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Play() = %v, expected ErrNotInitialized", err)
	}
	if err := sm.Stop(core.CueKiss); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Stop() = %v, expected ErrNotInitialized", err)
	}

	// Close before Initialize must not touch the speaker
	sm.Close()
}

func TestDisabledInitializeIsNoop(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize() with audio disabled failed: %v", err)
	}
	if err := sm.Play(core.CueWarning); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Play() = %v, expected ErrNotInitialized", err)
	}
}

func TestToggleMute(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.Muted() {
		t.Fatal("new manager should not be muted")
	}
	if !sm.ToggleMute() || !sm.Muted() {
		t.Error("ToggleMute() should mute")
	}
	if sm.ToggleMute() || sm.Muted() {
		t.Error("second ToggleMute() should unmute")
	}
}

func TestToggleMuteConcurrent(t *testing.T) {
	sm := NewSoundManager(nil)

	const toggles = 100
	var mutedResults atomic.Int64
	var wg sync.WaitGroup
	for range toggles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if sm.ToggleMute() {
				mutedResults.Add(1)
			}
		}()
	}
	wg.Wait()

	// Every toggle sees a distinct state, so half of them mute
	if got := mutedResults.Load(); got != toggles/2 {
		t.Errorf("%d toggles returned muted, expected %d", got, toggles/2)
	}
	if sm.Muted() || sm.master.Silent {
		t.Error("an even number of toggles should leave output unmuted")
	}
}

func TestNewAudioConfigClamps(t *testing.T) {
	tests := []struct {
		pct  int
		want float64
	}{
		{50, 0.5},
		{-10, 0},
		{150, 1},
	}
	for _, tc := range tests {
		cfg := NewAudioConfig(true, tc.pct, 0)
		if cfg.Volume != tc.want {
			t.Errorf("NewAudioConfig(%d).Volume = %v, expected %v", tc.pct, cfg.Volume, tc.want)
		}
		if cfg.SampleRate != 44100 {
			t.Errorf("zero sample rate should keep default, got %d", cfg.SampleRate)
		}
	}
}
