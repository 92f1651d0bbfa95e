package astar

import (
	"fmt"

	"github.com/katalvlaran/gridstar/gridgraph"
)

// reconstruct walks parent links from goal back to the self-parented start
// and returns the cells in start → goal order, each exactly once.
//
// A valid chain visits at most Rows×Cols cells. A longer walk means the
// chain cycles, and a chain that leaves the grid or ends anywhere but start
// is corrupt; both are reported as ErrInternalInconsistency.
func reconstruct(g *gridgraph.GridGraph, records []cellRecord, start, goal gridgraph.Cell) ([]gridgraph.Cell, error) {
	limit := g.Size()
	path := make([]gridgraph.Cell, 0, 16)
	cur := goal
	for {
		if len(path) >= limit {
			return nil, fmt.Errorf("%w: parent chain from %v exceeds %d cells", ErrInternalInconsistency, goal, limit)
		}
		if !g.InBounds(cur.Row, cur.Col) {
			return nil, fmt.Errorf("%w: parent chain leaves the grid at %v", ErrInternalInconsistency, cur)
		}
		path = append(path, cur)
		parent := records[g.Index(cur)].parent
		if parent == cur {
			break
		}
		cur = parent
	}
	if cur != start {
		return nil, fmt.Errorf("%w: parent chain ends at %v, want start %v", ErrInternalInconsistency, cur, start)
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
