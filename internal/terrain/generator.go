package terrain

import (
	"errors"
	"fmt"
)

// ErrUnknownDifficulty is returned when no policy is registered for a difficulty.
var ErrUnknownDifficulty = errors.New("terrain: unknown difficulty")

// Result describes a completed generation.
// Anchors stay valid after re-analysis because boosting never turns land
// into water or water into land.
type Result struct {
	Difficulty Difficulty
	Primary    Coord // Anchor of the largest seeded island
	Designated Coord // Anchor of the island the policy privileged
	Decisive   bool  // Designated is the unique tallest island
	Islands    int   // Number of islands on the map
}

// Generator produces terrain in two phases: per-cell seeding, then a
// policy-dependent boost that guarantees a clearly highest island.
type Generator struct {
	params Params
	seeder Seeder
	rng    Rand
}

// NewGenerator creates a generator. A nil seeder selects BernoulliSeeder.
func NewGenerator(p Params, seeder Seeder, rng Rand) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("terrain: generator needs a random source")
	}
	if seeder == nil {
		seeder = BernoulliSeeder{}
	}
	return &Generator{
		params: p,
		seeder: seeder,
		rng:    rng,
	}, nil
}

// Params returns the generator's tuning.
func (gen *Generator) Params() Params {
	return gen.params
}

// Generate overwrites every elevation of g. Callers must re-run FindIslands
// afterwards; islands computed before the call are stale.
//
// Returns ErrDegenerateMap when seeding produced no land at all; the grid
// is left seeded but unboosted and the caller should regenerate.
func (gen *Generator) Generate(g *Grid, d Difficulty) (Result, error) {
	policy, ok := LookupPolicy(d)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}

	gen.seeder.Seed(g, gen.rng, gen.params)

	part := FindIslands(g)
	if part.Len() == 0 {
		return Result{}, ErrDegenerateMap
	}

	s := survey(g, part)
	boost := policy(s, gen.rng, gen.params)

	return Result{
		Difficulty: d,
		Primary:    s.Primary.Anchor(),
		Designated: boost.Designated.Anchor(),
		Decisive:   boost.Decisive,
		Islands:    part.Len(),
	}, nil
}

// survey finds the largest island and the group sharing the top average.
// part must contain at least one island.
func survey(g *Grid, part *Partition) Survey {
	islands := part.Islands()
	s := Survey{
		Grid:       g,
		Partition:  part,
		Primary:    islands[0],
		MaxAverage: islands[0].AverageElevation(),
	}
	for _, isl := range islands[1:] {
		if isl.Size() > s.Primary.Size() {
			s.Primary = isl
		}
		if avg := isl.AverageElevation(); avg > s.MaxAverage {
			s.MaxAverage = avg
		}
	}
	for _, isl := range islands {
		if isl.AverageElevation() == s.MaxAverage {
			s.Tallest = append(s.Tallest, isl)
		}
	}
	return s
}
