// Package heuristic provides estimates of the remaining cost from a grid cell
// to a goal cell, for use by informed searches such as package astar.
//
// All estimates assume unit step cost. A heuristic is admissible when it
// never exceeds the true remaining cost:
//
//   - Chebyshev is exact on an open 8-connected grid, hence admissible and
//     consistent for both Conn8 and Conn4.
//   - Euclidean is admissible on 4-connected grids. On 8-connected grids with
//     unit diagonal cost it may exceed the true cost by up to a factor √2.
//   - Zero is trivially admissible and reduces A* to Dijkstra.
package heuristic

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridstar/gridgraph"
)

// Func estimates the cost from (row, col) to goal.
type Func func(row, col int, goal gridgraph.Cell) float64

// Euclidean returns the straight-line distance from (row, col) to goal.
func Euclidean(row, col int, goal gridgraph.Cell) float64 {
	dr := float64(row - goal.Row)
	dc := float64(col - goal.Col)

	return math.Sqrt(dr*dr + dc*dc)
}

// Chebyshev returns max(|Δrow|, |Δcol|), the number of king moves to goal.
func Chebyshev(row, col int, goal gridgraph.Cell) float64 {
	dr := math.Abs(float64(row - goal.Row))
	dc := math.Abs(float64(col - goal.Col))

	return math.Max(dr, dc)
}

// Zero always returns 0.
func Zero(int, int, gridgraph.Cell) float64 { return 0 }

// Names lists the identifiers accepted by ByName. "dijkstra" is an alias
// for "zero".
var Names = []string{"euclidean", "chebyshev", "zero", "dijkstra"}

// ByName resolves a heuristic by its case-insensitive name.
func ByName(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "euclidean":
		return Euclidean, nil
	case "chebyshev":
		return Chebyshev, nil
	case "zero", "dijkstra":
		return Zero, nil
	default:
		return nil, fmt.Errorf("heuristic: unknown heuristic %q (want one of %s)", name, strings.Join(Names, ", "))
	}
}
