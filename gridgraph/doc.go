// Package gridgraph models a 2D occupancy grid as a graph of cells.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int (or [][]bool) grid and stores, per
//     cell, whether it is open (traversable) or blocked.
//   - Cells with value ≥ OpenThreshold are open; all other cells are blocked.
//   - Bounds and occupancy queries (InBounds, IsOpen) used by path searches.
//   - Connected components of open cells and a brute-force unit-cost BFS
//     (StepDistance) that serve as reachability and optimality references.
//
// Why:
//
//   - Robot and game maps: decide where an agent may step.
//   - Search engines (see package astar) need O(1) bounds and occupancy checks
//     over a dense, row-major layout.
//
// Complexity:
//
//   - NewGridGraph:        O(R×C) time and memory.
//   - InBounds, IsOpen:    O(1).
//   - ConnectedComponents: O(R×C×d), Memory: O(R×C) (d = 4 or 8 neighbors).
//   - StepDistance:        O(R×C×d), Memory: O(R×C).
//
// Options:
//
//   - GridOptions.OpenThreshold: minimum value considered "open".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors, default).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell lies outside the grid.
//   - ErrBlockedCell: a cell that must be traversable is blocked.
//   - ErrNoPath: no route exists between two cells.
package gridgraph
