package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings that can come from the environment. They become the
// defaults of the matching CLI flags.
type Env struct {
	DBPath     string `env:"KISS_DB_PATH" envDefault:"~/.secretkiss/scores.db"`
	FPS        int    `env:"KISS_FPS" envDefault:"60"`
	Seed       int64  `env:"KISS_SEED" envDefault:"0"`
	LogFile    string `env:"KISS_LOG_FILE" envDefault:"~/.secretkiss/kiss.log"`
	LogLevel   string `env:"KISS_LOG_LEVEL" envDefault:"info"`
	Audio      bool   `env:"KISS_AUDIO" envDefault:"true"`
	Volume     int    `env:"KISS_VOLUME" envDefault:"50"`
	SampleRate int    `env:"KISS_SAMPLE_RATE" envDefault:"44100"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses the KISS_* environment into an Env.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return e, err
	}
	return e, nil
}

// DefaultEnv returns the tag defaults without reading the process environment.
func DefaultEnv() Env {
	var e Env
	_ = env.ParseWithOptions(&e, env.Options{Environment: map[string]string{}})
	return e
}
