package audio

import (
	"errors"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/secret-kiss/internal/core"
)

var (
	// ErrNotInitialized is returned when a cue is requested before Initialize.
	ErrNotInitialized = errors.New("audio: not initialized")
	// ErrUnknownCue is returned for cues with no sound attached.
	ErrUnknownCue = errors.New("audio: unknown cue")
)

// Note frequencies in Hz.
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG3 = 196.00
	noteC3 = 130.81
)

// NewCueStreamer builds a fresh streamer for a cue. Looping cues never end;
// one-shot cues drain on their own.
func NewCueStreamer(cue core.Cue, cfg *AudioConfig) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	vol := cfg.cueVolume(cue.String())

	var s beep.Streamer
	switch cue {
	case core.CueBackground:
		s = NewMelody([]note{
			{noteC4, 250 * time.Millisecond},
			{noteE4, 250 * time.Millisecond},
			{noteG4, 250 * time.Millisecond},
			{noteE4, 250 * time.Millisecond},
			{noteA4, 250 * time.Millisecond},
			{noteG4, 250 * time.Millisecond},
			{noteE4, 250 * time.Millisecond},
			{0, 250 * time.Millisecond},
		}, WaveSine, rate)
	case core.CueKiss:
		// Soft warble
		s = NewMelody([]note{
			{noteC5, 90 * time.Millisecond},
			{noteE5, 90 * time.Millisecond},
		}, WaveSine, rate)
	case core.CueWarning:
		d := 300 * time.Millisecond
		s = beep.Seq(
			NewEnvelope(NewOscillator(noteA4*2, d/2, WaveSquare, rate), d/2, 5*time.Millisecond, 40*time.Millisecond, rate),
			NewEnvelope(NewOscillator(noteA4*2, d/2, WaveSquare, rate), d/2, 5*time.Millisecond, 40*time.Millisecond, rate),
		)
	case core.CueAlert:
		d := 600 * time.Millisecond
		s = NewEnvelope(
			NewMelody([]note{{noteE5, 100 * time.Millisecond}, {noteC5, 100 * time.Millisecond}}, WaveSaw, rate),
			d, 10*time.Millisecond, 100*time.Millisecond, rate,
		)
	case core.CueLose:
		step := 220 * time.Millisecond
		tone := func(freq float64) beep.Streamer {
			return NewEnvelope(NewOscillator(freq, step, WaveSaw, rate), step, 5*time.Millisecond, 60*time.Millisecond, rate)
		}
		s = beep.Seq(tone(noteG4), tone(noteE4), tone(noteG3), tone(noteC3))
	default:
		return nil, ErrUnknownCue
	}

	return newVolume(s, vol), nil
}
