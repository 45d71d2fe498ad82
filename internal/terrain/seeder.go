package terrain

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Seeder assigns base elevations to every cell of a grid before islands are
// analysed. Seeded land elevations must lie in [p.SeedMin, p.SeedMax].
type Seeder interface {
	Seed(g *Grid, rng Rand, p Params)
}

// BernoulliSeeder draws each cell independently: water with probability
// WaterProbability, otherwise a uniform elevation in [SeedMin, SeedMax].
// There is no spatial correlation.
type BernoulliSeeder struct{}

// Seed implements Seeder.
func (BernoulliSeeder) Seed(g *Grid, rng Rand, p Params) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			elev := 0
			if rng.Float64() >= p.WaterProbability {
				elev = between(rng, p.SeedMin, p.SeedMax)
			}
			g.set(C(x, y), elev)
		}
	}
}

// NoiseSeeder samples layered OpenSimplex noise so land forms contiguous
// coastlines instead of scattered specks. Cells whose noise value falls below
// WaterProbability are water; the remainder is scaled into [SeedMin, SeedMax].
type NoiseSeeder struct {
	Frequency   float64 // Base sampling frequency per cell
	Octaves     int     // Number of noise layers
	Persistence float64 // Amplitude falloff per octave
}

// DefaultNoiseSeeder returns settings that give a handful of islands on a 30×30 map.
func DefaultNoiseSeeder() NoiseSeeder {
	return NoiseSeeder{
		Frequency:   0.18,
		Octaves:     3,
		Persistence: 0.5,
	}
}

// Seed implements Seeder.
func (s NoiseSeeder) Seed(g *Grid, rng Rand, p Params) {
	noise := opensimplex.NewNormalized(rng.Int64())
	octaves := max(s.Octaves, 1)

	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			n := octaveNoise(noise, float64(x), float64(y), octaves, s.Frequency, s.Persistence)
			g.set(C(x, y), s.elevationFor(n, p))
		}
	}
}

func (s NoiseSeeder) elevationFor(n float64, p Params) int {
	if n < p.WaterProbability || p.WaterProbability >= 1 {
		return 0
	}
	span := p.SeedMax - p.SeedMin + 1
	t := (n - p.WaterProbability) / (1 - p.WaterProbability)
	elev := p.SeedMin + int(t*float64(span))
	return min(max(elev, p.SeedMin), p.SeedMax)
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
