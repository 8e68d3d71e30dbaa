package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadKiss loads the game configuration.
// Search order: customPath -> ~/.secretkiss/configs/kiss.yaml -> ./configs/kiss.yaml -> embedded default
func LoadKiss(customPath string) (KissConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultKissConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseKiss(data)
		if err != nil {
			return DefaultKissConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("kiss.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseKiss(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "kiss.yaml")); err == nil {
		if cfg, err := parseKiss(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseKiss(defaultKissYAML)
	if err != nil {
		return DefaultKissConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseKiss decodes YAML on top of the built-in defaults, so a file only
// needs to name the fields it changes, then validates the result.
func parseKiss(data []byte) (KissConfig, error) {
	cfg := DefaultKissConfig()
	cfg.Messages = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if len(cfg.Messages) == 0 {
		cfg.Messages = append([]string(nil), DefaultMessages...)
	}
	if cfg.StoreKey == "" {
		cfg.StoreKey = DefaultStoreKey
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".secretkiss", "configs", filename)
}
