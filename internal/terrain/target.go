package terrain

// SelectTarget returns the island with the highest average elevation.
// Ties go to the island that comes first in the slice, which for a
// Partition is discovery order. Returns false only for an empty slice.
func SelectTarget(islands []*Island) (*Island, bool) {
	if len(islands) == 0 {
		return nil, false
	}
	best := islands[0]
	bestAvg := best.AverageElevation()
	for _, isl := range islands[1:] {
		if avg := isl.AverageElevation(); avg > bestAvg {
			best, bestAvg = isl, avg
		}
	}
	return best, true
}

// DesignatedIsland resolves the island a generation privileged against a
// partition recomputed from the generated grid.
func DesignatedIsland(p *Partition, r Result) (*Island, bool) {
	return p.IslandAt(r.Designated)
}

// Target picks the round's target from a freshly analysed partition.
// A decisive generation result is used as recorded, so the target never
// depends on float comparisons agreeing; otherwise SelectTarget decides.
func Target(p *Partition, r *Result) (*Island, bool) {
	if r != nil && r.Decisive {
		if isl, ok := DesignatedIsland(p, *r); ok {
			return isl, true
		}
	}
	return SelectTarget(p.Islands())
}
