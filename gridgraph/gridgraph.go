// Package gridgraph provides utilities to treat a 2D occupancy grid as a graph.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - O(1) bounds and occupancy queries over a dense row-major layout
//   - Identification of connected components of open cells
//   - Unit-cost breadth-first distances between cells
//
// Cells with value < OpenThreshold are blocked; cells with value ≥ OpenThreshold are open.
package gridgraph

import (
	"strings"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// The input is copied into a dense occupancy table, so later mutation of
// values does not affect the grid.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if err := checkShape(len(values), func(r int) int { return len(values[r]) }); err != nil {
		return nil, err
	}
	rows, cols := len(values), len(values[0])
	open := make([]bool, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			open[r*cols+c] = values[r][c] >= opts.OpenThreshold
		}
	}

	return newGrid(rows, cols, open, opts.Conn), nil
}

// From2D builds a GridGraph from values using the default OpenThreshold and conn.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// FromBools builds a GridGraph where true marks an open cell.
func FromBools(cells [][]bool, conn Connectivity) (*GridGraph, error) {
	if err := checkShape(len(cells), func(r int) int { return len(cells[r]) }); err != nil {
		return nil, err
	}
	rows, cols := len(cells), len(cells[0])
	open := make([]bool, rows*cols)
	for r := 0; r < rows; r++ {
		copy(open[r*cols:(r+1)*cols], cells[r])
	}

	return newGrid(rows, cols, open, conn), nil
}

func checkShape(rows int, rowLen func(int) int) error {
	if rows == 0 || rowLen(0) == 0 {
		return ErrEmptyGrid
	}
	cols := rowLen(0)
	for r := 1; r < rows; r++ {
		if rowLen(r) != cols {
			return ErrNonRectangular
		}
	}

	return nil
}

func newGrid(rows, cols int, open []bool, conn Connectivity) *GridGraph {
	// Precompute neighbor offsets based on connectivity
	offsets := offsets8
	if conn == Conn4 {
		offsets = offsets8[:4]
	}

	return &GridGraph{
		rows:            rows,
		cols:            cols,
		open:            open,
		conn:            conn,
		neighborOffsets: offsets,
	}
}

// Rows returns the number of rows (ROW).
func (gg *GridGraph) Rows() int { return gg.rows }

// Cols returns the number of columns (COL).
func (gg *GridGraph) Cols() int { return gg.cols }

// Size returns Rows×Cols.
func (gg *GridGraph) Size() int { return gg.rows * gg.cols }

// Conn returns the grid connectivity.
func (gg *GridGraph) Conn() Connectivity { return gg.conn }

// IsValid reports whether (row,col) lies within a rows×cols grid.
func IsValid(row, col, rows, cols int) bool {
	return row >= 0 && row < rows && col >= 0 && col < cols
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return IsValid(row, col, gg.rows, gg.cols)
}

// IsOpen reports whether the cell at (row,col) is traversable.
// The caller must check InBounds first; out-of-range input panics.
// Complexity: O(1).
func (gg *GridGraph) IsOpen(row, col int) bool {
	return gg.open[row*gg.cols+col]
}

// NeighborOffsets returns the precomputed (dRow,dCol) neighbor offsets.
// The slice is shared; callers must not modify it.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() []Cell {
	return gg.neighborOffsets
}

// Index maps c to its row‑major index: Row*Cols + Col.
// Complexity: O(1).
func (gg *GridGraph) Index(c Cell) int {
	return c.Row*gg.cols + c.Col
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{Row: idx / gg.cols, Col: idx % gg.cols}
}

// String renders the grid one row per line, '.' for open and '#' for blocked.
func (gg *GridGraph) String() string {
	var b strings.Builder
	b.Grow(gg.rows * (gg.cols + 1))
	for r := 0; r < gg.rows; r++ {
		for c := 0; c < gg.cols; c++ {
			if gg.IsOpen(r, c) {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
