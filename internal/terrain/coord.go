package terrain

import "fmt"

// Coord represents a cell position on the grid.
// X increases to the right, Y increases downward (row index of the matrix).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// neighborOffsets lists von Neumann offsets: up, right, down, left.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Cell is a single grid position with its elevation.
// Land status is derived from the elevation and never stored.
type Cell struct {
	Pos       Coord
	Elevation int
}

// IsLand reports whether the cell is above sea level.
func (c Cell) IsLand() bool {
	return c.Elevation > 0
}
