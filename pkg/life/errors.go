package life

import "errors"

var (
	// ErrOutOfBounds is returned when a write targets a cell outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrDegenerateGrid is returned when a grid has no valid index space.
	ErrDegenerateGrid = errors.New("degenerate grid")
)
