package terrain

import (
	"fmt"
	"sort"
	"sync"
)

// Difficulty names a generation policy.
type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

// Survey is the island analysis of freshly seeded terrain handed to a policy.
type Survey struct {
	Grid      *Grid
	Partition *Partition

	// Primary is the first island of maximum cell count in discovery order.
	Primary *Island
	// MaxAverage is the highest island average elevation.
	MaxAverage float64
	// Tallest holds every island whose average equals MaxAverage exactly,
	// in discovery order.
	Tallest []*Island
}

// Boost is what a policy reports after raising the terrain.
type Boost struct {
	// Designated is the island the policy privileged.
	Designated *Island
	// Decisive is true when Designated is guaranteed to be the unique
	// island with the highest average elevation.
	Decisive bool
}

// Policy raises seeded terrain in place according to a difficulty rule set.
type Policy func(s Survey, rng Rand, p Params) Boost

// PolicyInfo contains metadata about a registered policy.
type PolicyInfo struct {
	Difficulty Difficulty
	Title      string
}

var (
	policies = make(map[Difficulty]Policy)
	titles   = make(map[Difficulty]string)
	mu       sync.RWMutex
)

// RegisterPolicy adds a difficulty policy to the registry.
// Typically called from an init() function.
// Panics if the difficulty is already registered.
func RegisterPolicy(d Difficulty, title string, fn Policy) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := policies[d]; exists {
		panic(fmt.Sprintf("terrain: policy %q already registered", d))
	}
	policies[d] = fn
	titles[d] = title
}

// LookupPolicy returns the policy registered for d.
func LookupPolicy(d Difficulty) (Policy, bool) {
	mu.RLock()
	defer mu.RUnlock()

	fn, ok := policies[d]
	return fn, ok
}

// Difficulties returns all registered policies, sorted by difficulty name.
func Difficulties() []PolicyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PolicyInfo, 0, len(policies))
	for d := range policies {
		result = append(result, PolicyInfo{
			Difficulty: d,
			Title:      titles[d],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Difficulty < result[j].Difficulty
	})

	return result
}

func init() {
	RegisterPolicy(DifficultyEasy, "Easy (one unmistakable peak)", easyPolicy)
	RegisterPolicy(DifficultyHard, "Hard (close competitors)", hardPolicy)
}

// easyPolicy forces every cell of the largest island to PeakElevation.
func easyPolicy(s Survey, _ Rand, p Params) Boost {
	for _, c := range s.Primary.Coords() {
		s.Grid.set(c, p.PeakElevation)
	}
	return Boost{
		Designated: s.Primary,
		Decisive:   p.PeakElevation > p.SeedMax,
	}
}

// hardPolicy lifts one randomly chosen island of the tallest group into the
// boost range and roughens every other island except the largest one.
// A tallest group of one is boosted too, so every hard map has an island
// entirely within the boost range.
func hardPolicy(s Survey, rng Rand, p Params) Boost {
	chosen := s.Tallest[rng.IntN(len(s.Tallest))]
	for _, c := range chosen.Coords() {
		s.Grid.set(c, between(rng, p.BoostMin, p.BoostMax))
	}

	for _, isl := range s.Partition.Islands() {
		if isl == s.Primary || isl == chosen {
			continue
		}
		for _, cell := range isl.cells {
			switch {
			case isl.Size() > 1:
				s.Grid.set(cell.Pos, min(p.BumpCap, cell.Elevation+between(rng, p.BumpMin, p.BumpMax)))
			case cell.Elevation > 0:
				s.Grid.set(cell.Pos, between(rng, p.RerollMin, p.RerollMax))
			}
		}
	}

	return Boost{Designated: chosen}
}
