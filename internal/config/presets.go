package config

import "fmt"

// Preset represents a named set of fixed timings.
type Preset string

const (
	// PresetStandard keeps the configured timings.
	PresetStandard Preset = "standard"
	// PresetClassic shortens the warning window to half a second.
	PresetClassic Preset = "classic"
)

// classicWarningMS is the warning window of the classic preset.
const classicWarningMS = 500

// ParsePreset converts a flag value to a Preset. Empty means standard.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetStandard:
		return PresetStandard, nil
	case PresetClassic:
		return PresetClassic, nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want standard or classic)", s)
	}
}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *KissConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Principal.WarningMS = classicWarningMS
	}
}
