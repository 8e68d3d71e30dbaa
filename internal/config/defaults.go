package config

import (
	_ "embed"
)

//go:embed defaults/kiss.yaml
var defaultKissYAML []byte

// DefaultStoreKey is the key the best score is persisted under.
const DefaultStoreKey = "gizliAskHighScore"

// DefaultMessages are the game-over lines used when a config has none.
var DefaultMessages = []string{
	"YAKALANDIN!",
	"CAUGHT!",
	"To the principal's office!",
	"Detention for a week!",
	"Not in the hallway!",
	"Your parents will hear about this!",
}

// DefaultKissConfig returns the built-in configuration.
func DefaultKissConfig() KissConfig {
	return KissConfig{
		Principal: PrincipalConfig{
			SafeMinMS:   3000,
			SafeMaxMS:   7000,
			WarningMS:   1000,
			DangerMinMS: 1500,
			DangerMaxMS: 2500,
		},
		Score: ScoreConfig{
			IntervalMS: 50,
		},
		Hearts: HeartsConfig{
			SpawnMS: 200,
			TTLMS:   2000,
			Gravity: 0.1,
			VXMin:   -2,
			VXMax:   2,
			VYMin:   -4,
			VYMax:   -2,
		},
		Messages: append([]string(nil), DefaultMessages...),
		StoreKey: DefaultStoreKey,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultKissYAML
}
