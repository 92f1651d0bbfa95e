// Package astar finds least-cost paths on occupancy grids with the A*
// informed-search algorithm.
//
// Overview:
//
//   - FindPath searches a *gridgraph.GridGraph from a start cell to a goal
//     cell, stepping to the 8 neighbors of a cell (4 on a Conn4 grid). Every
//     step costs 1.0, diagonal or not.
//   - The open set is a min-heap ordered by f = g + h. Among equal f, the
//     entry pushed first is expanded first.
//   - Relaxation never updates a heap entry in place; a cheaper route pushes a
//     fresh entry and stale entries are skipped when popped (lazy decrease-key).
//   - The goal is reported the first time it is discovered as a neighbor of
//     the expanded cell, not when it would be popped from the open set.
//
// Outcomes:
//
// FindPath reports ordinary results through Result.Status rather than
// errors, so callers can discriminate them programmatically:
//
//   - StatusInvalidStart, StatusInvalidGoal: coordinate outside the grid.
//   - StatusBlockedStart, StatusBlockedGoal: coordinate in bounds but blocked.
//   - StatusTrivialPath: start equals goal; Path is the single start cell.
//   - StatusFound: Path runs from start to goal inclusive.
//   - StatusNotFound: the open set emptied without reaching the goal.
//
// Checks run in that order; the first failing one wins.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid: FindPath was called with a nil grid.
//   - ErrInternalInconsistency: the parent chain did not lead back to the
//     start within Rows×Cols steps. This indicates a defect in the engine,
//     never bad input, and is logged at error level.
//
// Heuristics:
//
// The default estimate is heuristic.Euclidean. Under unit diagonal cost it
// can overestimate by up to √2, and together with the discovery-time goal
// exit this may return a path longer than the optimum. heuristic.Chebyshev
// is exact on open 8-connected grids and keeps results optimal; select it
// with WithHeuristic.
//
// Performance and complexity:
//
//   - Time:  O(R·C·log(R·C)), with up to d pushes per expanded cell.
//   - Space: O(R·C) for the dense cell records, the closed table and the heap.
//
// Thread safety:
//
//   - All search state is allocated per call. A GridGraph is never mutated by
//     FindPath, so concurrent searches may share one grid without locking.
package astar
