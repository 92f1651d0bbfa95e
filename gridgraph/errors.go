package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside [0,Rows)×[0,Cols).
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlockedCell indicates a blocked cell where an open one is required.
	ErrBlockedCell = errors.New("gridgraph: cell is blocked")
	// ErrNoPath indicates no route exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
