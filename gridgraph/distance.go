package gridgraph

import "fmt"

// StepDistance returns the minimum number of unit steps between start and
// goal, moving only through open cells along the grid connectivity. Every
// step costs 1 regardless of direction, so it is the exact optimum any
// unit-cost search over the same grid must match.
//
// Behavior:
//  1. Validate both cells are in bounds (ErrOutOfBounds) and open (ErrBlockedCell).
//  2. Plain BFS from start over open cells.
//  3. Stop when goal is dequeued; ErrNoPath if the queue drains first.
//
// Complexity: O(R·C·d) time, O(R·C) memory.
func (gg *GridGraph) StepDistance(start, goal Cell) (int, error) {
	for _, c := range []Cell{start, goal} {
		if !gg.InBounds(c.Row, c.Col) {
			return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
		if !gg.IsOpen(c.Row, c.Col) {
			return 0, fmt.Errorf("%w: %v", ErrBlockedCell, c)
		}
	}

	N := gg.Size()
	dist := make([]int, N)
	for i := range dist {
		dist[i] = -1
	}
	src, dst := gg.Index(start), gg.Index(goal)
	dist[src] = 0
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			return dist[u], nil
		}
		uc := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vr, vc := uc.Row+d.Row, uc.Col+d.Col
			if !gg.InBounds(vr, vc) || !gg.IsOpen(vr, vc) {
				continue
			}
			v := vr*gg.cols + vc
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return 0, ErrNoPath
}
