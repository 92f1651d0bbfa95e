package astar

import (
	"container/heap"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/gridgraph"
)

// freshRecords returns unreached records where every cell is its own parent.
func freshRecords(g *gridgraph.GridGraph) []cellRecord {
	inf := math.Inf(1)
	recs := make([]cellRecord, g.Size())
	for i := range recs {
		recs[i] = cellRecord{g: inf, h: inf, f: inf, parent: g.Coordinate(i)}
	}

	return recs
}

func openGrid(t *testing.T, rows, cols int) *gridgraph.GridGraph {
	t.Helper()
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
		for c := range cells[r] {
			cells[r][c] = true
		}
	}
	g, err := gridgraph.FromBools(cells, gridgraph.Conn8)
	require.NoError(t, err)

	return g
}

func TestReconstruct_Chain(t *testing.T) {
	g := openGrid(t, 3, 3)
	recs := freshRecords(g)
	a, b, c := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 1}, gridgraph.Cell{Row: 2, Col: 1}
	recs[g.Index(b)].parent = a
	recs[g.Index(c)].parent = b

	path, err := reconstruct(g, recs, a, c)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{a, b, c}, path)
}

func TestReconstruct_StartIsGoal(t *testing.T) {
	g := openGrid(t, 1, 1)
	start := gridgraph.Cell{}
	path, err := reconstruct(g, freshRecords(g), start, start)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{start}, path)
}

// TestReconstruct_Cycle ensures a cyclic chain is cut off at Rows×Cols cells.
func TestReconstruct_Cycle(t *testing.T) {
	g := openGrid(t, 2, 2)
	recs := freshRecords(g)
	a, b := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 1}
	recs[g.Index(a)].parent = b
	recs[g.Index(b)].parent = a

	_, err := reconstruct(g, recs, gridgraph.Cell{Row: 0, Col: 1}, b)
	assert.ErrorIs(t, err, ErrInternalInconsistency)
	assert.ErrorContains(t, err, "exceeds 4 cells")
}

// TestReconstruct_WrongTerminus rejects a chain that ends away from start.
func TestReconstruct_WrongTerminus(t *testing.T) {
	g := openGrid(t, 2, 2)
	recs := freshRecords(g)
	goal := gridgraph.Cell{Row: 1, Col: 1}
	recs[g.Index(goal)].parent = gridgraph.Cell{Row: 1, Col: 0}

	_, err := reconstruct(g, recs, gridgraph.Cell{Row: 0, Col: 0}, goal)
	assert.ErrorIs(t, err, ErrInternalInconsistency)
	assert.ErrorContains(t, err, "ends at (1,0)")
}

// TestReconstruct_LeavesGrid rejects parents outside the grid.
func TestReconstruct_LeavesGrid(t *testing.T) {
	g := openGrid(t, 2, 2)
	recs := freshRecords(g)
	goal := gridgraph.Cell{Row: 1, Col: 1}
	recs[g.Index(goal)].parent = gridgraph.Cell{Row: 5, Col: 5}

	_, err := reconstruct(g, recs, gridgraph.Cell{}, goal)
	assert.ErrorIs(t, err, ErrInternalInconsistency)
}

// TestOpenSet_TieBreak checks f ordering with FIFO among equal f.
func TestOpenSet_TieBreak(t *testing.T) {
	r := newRunner(openGrid(t, 3, 3), gridgraph.Cell{Row: 2, Col: 2}, func(int, int, gridgraph.Cell) float64 { return 0 })
	r.push(2, gridgraph.Cell{Row: 0, Col: 0})
	r.push(1, gridgraph.Cell{Row: 0, Col: 1})
	r.push(2, gridgraph.Cell{Row: 0, Col: 2})
	r.push(1, gridgraph.Cell{Row: 1, Col: 0})

	var order []gridgraph.Cell
	for r.open.Len() > 0 {
		order = append(order, popCell(r))
	}
	assert.Equal(t, []gridgraph.Cell{
		{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: 0}, {Row: 0, Col: 2},
	}, order)
}

func popCell(r *runner) gridgraph.Cell {
	return heap.Pop(&r.open).(openItem).cell
}
