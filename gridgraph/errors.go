package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfRange indicates a cell id or coordinate outside the grid.
	ErrOutOfRange = errors.New("gridgraph: cell out of range")
	// ErrNotAdjacent indicates a passage between cells that are not orthogonal neighbors.
	ErrNotAdjacent = errors.New("gridgraph: cells are not orthogonally adjacent")
	// ErrVoidLink indicates a passage touching a position with no cell.
	ErrVoidLink = errors.New("gridgraph: passage touches a void position")
	// ErrBadGlyph indicates an unknown character in an ASCII layout.
	ErrBadGlyph = errors.New("gridgraph: unknown layout glyph")
)
