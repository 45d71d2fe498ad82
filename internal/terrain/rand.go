package terrain

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Rand is the randomness source used by generation.
// *rand.Rand from math/rand/v2 satisfies it; tests may supply their own.
type Rand interface {
	IntN(n int) int
	Int64() int64
	Float64() float64
}

// NewRand returns a deterministic PCG generator for the given seed.
func NewRand(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible maps.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// between returns a uniform integer in [lo, hi].
func between(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
