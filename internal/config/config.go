// Package config provides YAML-based configuration loading for island
// generation and rounds.
package config

import "fmt"

// IslandsConfig contains all configuration for the island guessing game.
type IslandsConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Generation GenerationConfig `yaml:"generation"`
	Round      RoundConfig      `yaml:"round"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Size int `yaml:"size"` // Side length of the square grid
}

// GenerationConfig defines terrain generation parameters.
type GenerationConfig struct {
	Difficulty       string      `yaml:"difficulty"`        // Default policy: "easy" or "hard"
	Seeder           string      `yaml:"seeder"`            // "bernoulli" or "noise"
	WaterProbability float64     `yaml:"water_probability"` // Chance a seeded cell is water
	Seed             RangeConfig `yaml:"seed"`              // Seeded land elevations
	PeakElevation    int         `yaml:"peak_elevation"`    // Easy mode forced elevation
	Boost            RangeConfig `yaml:"boost"`             // Hard mode tallest island re-roll
	Bump             BumpConfig  `yaml:"bump"`              // Hard mode multi-cell increment
	Reroll           RangeConfig `yaml:"reroll"`            // Hard mode single-cell re-roll
	Noise            NoiseConfig `yaml:"noise"`             // Used when seeder is "noise"
}

// RangeConfig is an inclusive integer range.
type RangeConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// BumpConfig is an increment range with a ceiling.
type BumpConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
	Cap int `yaml:"cap"`
}

// NoiseConfig defines layered simplex noise sampling.
type NoiseConfig struct {
	Frequency   float64 `yaml:"frequency"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
}

// RoundConfig defines game round rules.
type RoundConfig struct {
	Attempts         int    `yaml:"attempts"`          // Guesses per round
	MaxRegenerations int    `yaml:"max_regenerations"` // Retries after a map with no land
	Fallback         string `yaml:"fallback"`          // Difficulty used when a round cannot be built
}

// Seeder names.
const (
	SeederBernoulli = "bernoulli"
	SeederNoise     = "noise"
)

// Validate checks values the generator and rounds cannot recover from.
// Generation ranges are validated by the terrain package.
func (c IslandsConfig) Validate() error {
	if c.Grid.Size <= 0 {
		return fmt.Errorf("config: grid.size must be positive, got %d", c.Grid.Size)
	}
	if c.Round.Attempts <= 0 {
		return fmt.Errorf("config: round.attempts must be positive, got %d", c.Round.Attempts)
	}
	if c.Round.MaxRegenerations < 0 {
		return fmt.Errorf("config: round.max_regenerations must not be negative")
	}
	switch c.Generation.Seeder {
	case "", SeederBernoulli, SeederNoise:
	default:
		return fmt.Errorf("config: unknown seeder %q", c.Generation.Seeder)
	}
	return nil
}
