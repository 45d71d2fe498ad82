package main

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/vovakirdan/islands/internal/terrain"
)

// resolveDifficulty validates a --difficulty value. An empty name keeps the
// configured difficulty. Near misses get a suggestion.
func resolveDifficulty(name string) (terrain.Difficulty, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", nil
	}
	d := terrain.Difficulty(name)
	if _, ok := terrain.LookupPolicy(d); ok {
		return d, nil
	}
	if suggestion, ok := closestDifficulty(name); ok {
		return "", fmt.Errorf("%w %q, did you mean %q?", terrain.ErrUnknownDifficulty, name, suggestion)
	}
	return "", fmt.Errorf("%w %q (run 'islands difficulties')", terrain.ErrUnknownDifficulty, name)
}

func closestDifficulty(name string) (terrain.Difficulty, bool) {
	var best terrain.Difficulty
	bestDist := -1
	for _, info := range terrain.Difficulties() {
		cand := string(info.Difficulty)
		dist := levenshtein.ComputeDistance(name, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = info.Difficulty, dist
		}
	}
	return best, bestDist >= 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
