package terrain

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch indicates an elevation matrix that is not size×size or holds invalid values.
	ErrShapeMismatch = errors.New("terrain: elevation matrix shape mismatch")
	// ErrDegenerateMap indicates a map without a single land cell.
	ErrDegenerateMap = errors.New("terrain: map has no land")
)

// ShapeError describes where an elevation matrix failed validation.
// Row and Col are -1 when the failure is not tied to a single entry.
type ShapeError struct {
	Row    int
	Col    int
	Reason string
}

func (e *ShapeError) Error() string {
	switch {
	case e.Row >= 0 && e.Col >= 0:
		return fmt.Sprintf("%v: row %d col %d: %s", ErrShapeMismatch, e.Row, e.Col, e.Reason)
	case e.Row >= 0:
		return fmt.Sprintf("%v: row %d: %s", ErrShapeMismatch, e.Row, e.Reason)
	default:
		return fmt.Sprintf("%v: %s", ErrShapeMismatch, e.Reason)
	}
}

// Unwrap lets errors.Is match ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

func shapeErrorf(row, col int, format string, args ...any) *ShapeError {
	return &ShapeError{Row: row, Col: col, Reason: fmt.Sprintf(format, args...)}
}
