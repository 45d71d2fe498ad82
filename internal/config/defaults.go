package config

import (
	_ "embed"
)

//go:embed defaults/islands.yaml
var defaultIslandsYAML []byte

// DefaultIslandsConfig returns the default configuration.
func DefaultIslandsConfig() IslandsConfig {
	return IslandsConfig{
		Grid: GridConfig{
			Size: 30,
		},
		Generation: GenerationConfig{
			Difficulty:       "easy",
			Seeder:           SeederBernoulli,
			WaterProbability: 0.8,
			Seed:             RangeConfig{Min: 1, Max: 5},
			PeakElevation:    10,
			Boost:            RangeConfig{Min: 7, Max: 10},
			Bump:             BumpConfig{Min: 3, Max: 5, Cap: 9},
			Reroll:           RangeConfig{Min: 1, Max: 7},
			Noise: NoiseConfig{
				Frequency:   0.18,
				Octaves:     3,
				Persistence: 0.5,
			},
		},
		Round: RoundConfig{
			Attempts:         3,
			MaxRegenerations: 5,
			Fallback:         "easy",
		},
	}
}
