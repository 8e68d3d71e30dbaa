// Package config provides YAML-based game configuration loading, presets and
// environment overrides for the hallway game.
package config

import "time"

// KissConfig contains all tuning for the game.
type KissConfig struct {
	Principal PrincipalConfig `yaml:"principal"`
	Score     ScoreConfig     `yaml:"score"`
	Hearts    HeartsConfig    `yaml:"hearts"`
	Messages  []string        `yaml:"messages"`  // Game-over lines, one picked at random
	StoreKey  string          `yaml:"store_key"` // Key under which the best score is stored
}

// PrincipalConfig defines the attention cycle timings, in milliseconds.
// Ranges are half-open: [min, max).
type PrincipalConfig struct {
	SafeMinMS   int `yaml:"safe_min_ms"`
	SafeMaxMS   int `yaml:"safe_max_ms"`
	WarningMS   int `yaml:"warning_ms"`
	DangerMinMS int `yaml:"danger_min_ms"`
	DangerMaxMS int `yaml:"danger_max_ms"`
}

// ScoreConfig defines the score clock.
type ScoreConfig struct {
	IntervalMS int `yaml:"interval_ms"` // One point per interval while kissing
}

// HeartsConfig defines the heart particle behavior.
type HeartsConfig struct {
	SpawnMS int     `yaml:"spawn_ms"` // Spawn cadence while kissing
	TTLMS   int     `yaml:"ttl_ms"`   // Lifetime of a heart
	Gravity float64 `yaml:"gravity"`  // Added to vy every frame
	VXMin   float64 `yaml:"vx_min"`
	VXMax   float64 `yaml:"vx_max"`
	VYMin   float64 `yaml:"vy_min"`
	VYMax   float64 `yaml:"vy_max"`
}

// Ms converts a millisecond count from the config to a duration.
func Ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// SafeRange returns the Safe phase duration range.
func (p PrincipalConfig) SafeRange() (time.Duration, time.Duration) {
	return Ms(p.SafeMinMS), Ms(p.SafeMaxMS)
}

// DangerRange returns the Danger phase duration range.
func (p PrincipalConfig) DangerRange() (time.Duration, time.Duration) {
	return Ms(p.DangerMinMS), Ms(p.DangerMaxMS)
}

// Warning returns the fixed Warning phase duration.
func (p PrincipalConfig) Warning() time.Duration {
	return Ms(p.WarningMS)
}

// Interval returns the time between score points.
func (s ScoreConfig) Interval() time.Duration {
	return Ms(s.IntervalMS)
}

// Spawn returns the time between hearts while kissing.
func (h HeartsConfig) Spawn() time.Duration {
	return Ms(h.SpawnMS)
}

// TTL returns how long a heart lives.
func (h HeartsConfig) TTL() time.Duration {
	return Ms(h.TTLMS)
}
