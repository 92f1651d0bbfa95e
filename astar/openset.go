package astar

import "github.com/katalvlaran/gridstar/gridgraph"

// openItem is one pending expansion: the f-value it was pushed with, its
// insertion sequence and the cell. The authoritative f for a cell is always
// its cellRecord; an item may be stale.
type openItem struct {
	f    float64
	seq  uint64
	cell gridgraph.Cell
}

// openSet is a min-heap of openItem ordered by f, then by insertion order.
// When a cheaper route to a cell is found, a new item is pushed; the outdated
// one remains and is skipped when popped (the cell is already closed).
type openSet []openItem

// Len returns the number of items in the heap.
func (s openSet) Len() int { return len(s) }

// Less orders by f ascending; equal f falls back to first-in-first-out.
func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}

	return s[i].seq < s[j].seq
}

// Swap swaps two elements in the heap.
func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type openItem.
func (s *openSet) Push(x any) { *s = append(*s, x.(openItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	item := old[n-1]
	*s = old[:n-1]

	return item
}
