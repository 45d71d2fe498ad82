// Package terrain provides the elevation grid, island connectivity analysis,
// procedural terrain generation and target island selection for the island
// guessing game. This package is UI-agnostic and deterministic for a given RNG.
package terrain

// Grid is a square board of cells.
// Cells are stored in row-major order: index = y*size + x.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates an all-water grid of the given size.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, shapeErrorf(-1, -1, "grid size must be positive, got %d", size)
	}
	g := &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.cells[g.index(C(x, y))] = Cell{Pos: C(x, y)}
		}
	}
	return g, nil
}

// FromMatrix creates a grid from an external elevation matrix.
// matrix[row][col] becomes the cell at (col, row). The matrix must be exactly
// size×size with non-negative values; it is never truncated or padded.
func FromMatrix(size int, matrix [][]int) (*Grid, error) {
	g, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	if len(matrix) != size {
		return nil, shapeErrorf(-1, -1, "expected %d rows, got %d", size, len(matrix))
	}
	for y, row := range matrix {
		if len(row) != size {
			return nil, shapeErrorf(y, -1, "expected %d columns, got %d", size, len(row))
		}
		for x, elev := range row {
			if elev < 0 {
				return nil, shapeErrorf(y, x, "negative elevation %d", elev)
			}
			g.set(C(x, y), elev)
		}
	}
	return g, nil
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.size + c.X
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// At returns the cell at the given coordinate.
func (g *Grid) At(c Coord) (Cell, bool) {
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return g.cells[g.index(c)], true
}

// Elevation returns the elevation at c, or 0 when c is out of bounds.
func (g *Grid) Elevation(c Coord) int {
	cell, _ := g.At(c)
	return cell.Elevation
}

// IsLand reports whether c is an in-bounds land cell.
func (g *Grid) IsLand(c Coord) bool {
	cell, ok := g.At(c)
	return ok && cell.IsLand()
}

// set overwrites the elevation at c. Only generation mutates a grid.
func (g *Grid) set(c Coord, elevation int) {
	if g.InBounds(c) {
		g.cells[g.index(c)].Elevation = elevation
	}
}

// Neighbors returns the in-bounds von Neumann neighbours of c,
// ordered up, right, down, left. There is no wraparound.
func (g *Grid) Neighbors(c Coord) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if cell, ok := g.At(c.Add(d[0], d[1])); ok {
			out = append(out, cell)
		}
	}
	return out
}

// Cells returns a copy of all cells in raster order (row by row).
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Matrix returns the elevations as matrix[row][col].
func (g *Grid) Matrix() [][]int {
	m := make([][]int, g.size)
	for y := 0; y < g.size; y++ {
		m[y] = make([]int, g.size)
		for x := 0; x < g.size; x++ {
			m[y][x] = g.cells[g.index(C(x, y))].Elevation
		}
	}
	return m
}

// LandCount returns the number of land cells in the grid.
func (g *Grid) LandCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.IsLand() {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		size:  g.size,
		cells: cells,
	}
}

// Equal returns true if two grids have the same size and elevations.
// A nil grid only equals another nil grid.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.size != other.size {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
