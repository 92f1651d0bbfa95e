// Package gridgraph defines core types and options for occupancy grids.
package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity: N, W, S, E, NW, NE, SW, SE.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, W, S, E.
	Conn4
)

// String returns "conn8" or "conn4".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}

	return "conn8"
}

// Cell is a 0-indexed (Row, Col) coordinate.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// OpenThreshold specifies the minimum cell value considered open.
	OpenThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// OpenThreshold=1 (values ≥1 are open), Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		OpenThreshold: 1,
		Conn:          Conn8,
	}
}

// GridGraph is an immutable occupancy grid. Occupancy is stored densely in
// row-major order, so a single GridGraph may be shared read-only by any
// number of concurrent searches.
type GridGraph struct {
	rows, cols      int
	open            []bool
	conn            Connectivity
	neighborOffsets []Cell
}

// offsets8 follows the expansion order N, W, S, E, NW, NE, SW, SE.
var offsets8 = []Cell{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}
