package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadIslands loads the game configuration.
// Search order: customPath -> ~/.islands/configs/islands.yaml -> ./configs/islands.yaml -> embedded default
// Files only need the keys they change; everything else keeps its default.
func LoadIslands(customPath string) (IslandsConfig, error) {
	cfg := DefaultIslandsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("islands.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultIslandsConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "islands.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultIslandsConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultIslandsYAML, &cfg); err != nil {
		return DefaultIslandsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".islands", "configs", filename)
}

// ApplyDifficulty overrides the configured default difficulty.
// An empty name leaves the config unchanged.
func ApplyDifficulty(cfg *IslandsConfig, difficulty string) {
	if difficulty != "" {
		cfg.Generation.Difficulty = difficulty
	}
}
