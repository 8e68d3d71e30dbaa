// Package audio plays the game's cues through the system speaker using
// synthesized tones, so no sound files ship with the binary.
package audio

// AudioConfig holds audio settings.
type AudioConfig struct {
	Enabled    bool
	Volume     float64 // 0.0-1.0
	SampleRate int
	CueVolumes map[string]float64
}

// DefaultAudioConfig returns the default audio configuration.
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 44100,
		CueVolumes: map[string]float64{
			"background": 0.35,
			"kiss":       0.6,
			"warning":    0.8,
			"alert":      0.9,
			"lose":       1.0,
		},
	}
}

// NewAudioConfig builds a config from the percentage volume used by the
// CLI and environment. Out-of-range values are clamped.
func NewAudioConfig(enabled bool, volumePct, sampleRate int) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.Volume = float64(volumePct) / 100.0
	if cfg.Volume < 0 {
		cfg.Volume = 0
	}
	if cfg.Volume > 1 {
		cfg.Volume = 1
	}
	if sampleRate > 0 {
		cfg.SampleRate = sampleRate
	}
	return cfg
}

// cueVolume returns the effective volume for a cue name.
func (c *AudioConfig) cueVolume(name string) float64 {
	v, ok := c.CueVolumes[name]
	if !ok {
		v = 1
	}
	return v * c.Volume
}
