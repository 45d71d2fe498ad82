// Package round runs guessing rounds on generated or external maps.
package round

import (
	"github.com/vovakirdan/islands/internal/config"
	"github.com/vovakirdan/islands/internal/terrain"
)

// DifficultyExternal labels rounds played on a supplied matrix.
const DifficultyExternal terrain.Difficulty = "external"

// Options configures a Session.
type Options struct {
	Size             int                // Grid side length
	Difficulty       terrain.Difficulty // Policy for generated maps
	Fallback         terrain.Difficulty // Policy used when a round cannot be built otherwise
	Attempts         int                // Guesses per round
	MaxRegenerations int                // Retries after a map with no land
	Params           terrain.Params
	Seeder           terrain.Seeder // nil selects terrain.BernoulliSeeder
}

// DefaultOptions returns the classic 30×30 easy game with three attempts.
func DefaultOptions() Options {
	return Options{
		Size:             30,
		Difficulty:       terrain.DifficultyEasy,
		Fallback:         terrain.DifficultyEasy,
		Attempts:         3,
		MaxRegenerations: 5,
		Params:           terrain.DefaultParams(),
	}
}

// OptionsFromConfig converts a loaded configuration into session options.
func OptionsFromConfig(cfg config.IslandsConfig) Options {
	gen := cfg.Generation

	opts := Options{
		Size:             cfg.Grid.Size,
		Difficulty:       terrain.Difficulty(gen.Difficulty),
		Fallback:         terrain.Difficulty(cfg.Round.Fallback),
		Attempts:         cfg.Round.Attempts,
		MaxRegenerations: cfg.Round.MaxRegenerations,
		Params: terrain.Params{
			WaterProbability: gen.WaterProbability,
			SeedMin:          gen.Seed.Min,
			SeedMax:          gen.Seed.Max,
			PeakElevation:    gen.PeakElevation,
			BoostMin:         gen.Boost.Min,
			BoostMax:         gen.Boost.Max,
			BumpMin:          gen.Bump.Min,
			BumpMax:          gen.Bump.Max,
			BumpCap:          gen.Bump.Cap,
			RerollMin:        gen.Reroll.Min,
			RerollMax:        gen.Reroll.Max,
		},
	}
	if opts.Difficulty == "" {
		opts.Difficulty = terrain.DifficultyEasy
	}
	if opts.Fallback == "" {
		opts.Fallback = terrain.DifficultyEasy
	}

	if gen.Seeder == config.SeederNoise {
		opts.Seeder = terrain.NoiseSeeder{
			Frequency:   gen.Noise.Frequency,
			Octaves:     gen.Noise.Octaves,
			Persistence: gen.Noise.Persistence,
		}
	}
	return opts
}
