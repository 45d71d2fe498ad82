package terrain

import "fmt"

// Params configures terrain generation. Every constant of the two-phase
// seed-then-boost algorithm lives here so difficulty tuning can be tested
// in isolation.
type Params struct {
	WaterProbability float64 // Chance a seeded cell is water (0-1)
	SeedMin          int     // Lowest seeded land elevation
	SeedMax          int     // Highest seeded land elevation

	PeakElevation int // Elevation forced onto the largest island in easy mode

	BoostMin int // Hard mode: re-roll range for the chosen tallest island
	BoostMax int

	BumpMin int // Hard mode: increment range for other multi-cell islands
	BumpMax int
	BumpCap int // Ceiling applied after the increment

	RerollMin int // Hard mode: re-roll range for single-cell islands
	RerollMax int
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		WaterProbability: 0.8,
		SeedMin:          1,
		SeedMax:          5,
		PeakElevation:    10,
		BoostMin:         7,
		BoostMax:         10,
		BumpMin:          3,
		BumpMax:          5,
		BumpCap:          9,
		RerollMin:        1,
		RerollMax:        7,
	}
}

// Validate checks that every range is well formed and that boosted
// elevations stay land.
func (p Params) Validate() error {
	if p.WaterProbability < 0 || p.WaterProbability > 1 {
		return fmt.Errorf("terrain: water probability %v outside [0,1]", p.WaterProbability)
	}
	ranges := []struct {
		name   string
		lo, hi int
	}{
		{"seed", p.SeedMin, p.SeedMax},
		{"boost", p.BoostMin, p.BoostMax},
		{"bump", p.BumpMin, p.BumpMax},
		{"reroll", p.RerollMin, p.RerollMax},
	}
	for _, r := range ranges {
		if r.lo > r.hi {
			return fmt.Errorf("terrain: %s range [%d,%d] is empty", r.name, r.lo, r.hi)
		}
	}
	if p.SeedMin < 1 || p.BoostMin < 1 || p.RerollMin < 1 || p.PeakElevation < 1 {
		return fmt.Errorf("terrain: land elevations must be at least 1")
	}
	if p.BumpMin < 0 || p.BumpCap < 1 {
		return fmt.Errorf("terrain: bump must be non-negative with a positive cap")
	}
	return nil
}
