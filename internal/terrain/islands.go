package terrain

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// Island is a maximal set of land cells connected by 4-directional adjacency.
// It is a snapshot: cell elevations are copied at analysis time and never change.
type Island struct {
	id      int
	anchor  Coord
	cells   []Cell
	members mapset.Set[Coord]
	total   int
}

func newIsland(id int, cells []Cell) *Island {
	isl := &Island{
		id:      id,
		anchor:  cells[0].Pos,
		cells:   cells,
		members: mapset.New[Coord](),
	}
	for _, cell := range cells {
		isl.members.Put(cell.Pos)
		isl.total += cell.Elevation
		if rasterBefore(cell.Pos, isl.anchor) {
			isl.anchor = cell.Pos
		}
	}
	return isl
}

// rasterBefore reports whether a comes before b in row-by-row scan order.
func rasterBefore(a, b Coord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// ID returns the discovery index of the island within its partition.
func (isl *Island) ID() int {
	return isl.id
}

// Anchor returns the island's first cell in raster order.
// The anchor identifies the island across re-analysis as long as land/water
// status is unchanged.
func (isl *Island) Anchor() Coord {
	return isl.anchor
}

// Size returns the number of cells in the island.
func (isl *Island) Size() int {
	return len(isl.cells)
}

// Cells returns a copy of the island's cells in discovery order.
func (isl *Island) Cells() []Cell {
	out := make([]Cell, len(isl.cells))
	copy(out, isl.cells)
	return out
}

// Coords returns the positions of the island's cells in discovery order.
func (isl *Island) Coords() []Coord {
	out := make([]Coord, len(isl.cells))
	for i, cell := range isl.cells {
		out[i] = cell.Pos
	}
	return out
}

// Contains reports whether c belongs to the island.
func (isl *Island) Contains(c Coord) bool {
	return isl.members.Has(c)
}

// AverageElevation returns the mean elevation over the island's cells.
func (isl *Island) AverageElevation() float64 {
	if len(isl.cells) == 0 {
		return 0
	}
	return float64(isl.total) / float64(len(isl.cells))
}

// MinElevation returns the lowest cell elevation in the island.
func (isl *Island) MinElevation() int {
	lo := isl.cells[0].Elevation
	for _, cell := range isl.cells[1:] {
		lo = min(lo, cell.Elevation)
	}
	return lo
}

// MaxElevation returns the highest cell elevation in the island.
func (isl *Island) MaxElevation() int {
	hi := isl.cells[0].Elevation
	for _, cell := range isl.cells[1:] {
		hi = max(hi, cell.Elevation)
	}
	return hi
}

// Partition is the set of islands found on a grid, in discovery order,
// plus a per-cell lookup of the owning island.
type Partition struct {
	size    int
	islands []*Island
	owner   []int // island index per cell, -1 for water
}

// FindIslands partitions the land cells of g into islands.
//
// Cells are scanned row by row; every unvisited land cell seeds an iterative
// depth-first flood fill through unvisited land neighbours. The visited set is
// local to the call, so the analysis is repeatable on a mutated grid and safe
// to run concurrently on distinct grids.
//
// Time:   O(N²).
// Memory: O(N²) for the visited set and output.
func FindIslands(g *Grid) *Partition {
	p := &Partition{
		size:  g.size,
		owner: make([]int, len(g.cells)),
	}
	for i := range p.owner {
		p.owner[i] = -1
	}

	visited := mapset.New[Coord]()
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			start := C(x, y)
			if !g.IsLand(start) || visited.Has(start) {
				continue
			}
			cells := floodFill(g, start, &visited)
			isl := newIsland(len(p.islands), cells)
			for _, cell := range cells {
				p.owner[g.index(cell.Pos)] = isl.id
			}
			p.islands = append(p.islands, isl)
		}
	}
	return p
}

// floodFill collects every land cell reachable from start.
func floodFill(g *Grid, start Coord, visited *mapset.Set[Coord]) []Cell {
	pending := stack.New[Coord]()
	pending.Push(start)

	var cells []Cell
	for pending.Size() > 0 {
		c := pending.Pop()
		if visited.Has(c) {
			continue
		}
		visited.Put(c)
		cell, _ := g.At(c)
		cells = append(cells, cell)

		for _, n := range g.Neighbors(c) {
			if n.IsLand() && !visited.Has(n.Pos) {
				pending.Push(n.Pos)
			}
		}
	}
	return cells
}

// Islands returns the islands in discovery order.
// The returned slice must be treated as read-only.
func (p *Partition) Islands() []*Island {
	return p.islands
}

// Len returns the number of islands.
func (p *Partition) Len() int {
	return len(p.islands)
}

// LandCount returns the number of cells covered by all islands.
func (p *Partition) LandCount() int {
	n := 0
	for _, isl := range p.islands {
		n += isl.Size()
	}
	return n
}

// IslandAt returns the island containing c, if any.
func (p *Partition) IslandAt(c Coord) (*Island, bool) {
	if c.X < 0 || c.X >= p.size || c.Y < 0 || c.Y >= p.size {
		return nil, false
	}
	idx := p.owner[c.Y*p.size+c.X]
	if idx < 0 {
		return nil, false
	}
	return p.islands[idx], true
}

// IslandContaining is IslandAt for raw coordinates.
func (p *Partition) IslandContaining(x, y int) (*Island, bool) {
	return p.IslandAt(C(x, y))
}
