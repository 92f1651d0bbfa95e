package astar

import (
	"container/heap"
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/gridstar/gridgraph"
	"github.com/katalvlaran/gridstar/heuristic"
)

// stepCost is the cost of any single move, orthogonal or diagonal.
const stepCost = 1.0

// FindPath searches g for a least-cost path from start to goal.
//
// Returns:
//
//   - res: the outcome; see Status for the variants. Unreachable goals and
//     invalid or blocked endpoints are reported here, not as errors.
//   - err: ErrNilGrid if g is nil, or an error wrapping
//     ErrInternalInconsistency if path reconstruction detects a corrupted
//     parent chain.
//
// Preconditions are checked in order (first failing check wins):
//  1. start within bounds (StatusInvalidStart).
//  2. goal within bounds (StatusInvalidGoal).
//  3. start traversable (StatusBlockedStart).
//  4. goal traversable (StatusBlockedGoal).
//  5. start != goal (StatusTrivialPath).
//
// Complexity:
//
//   - Time:  O(R·C·log(R·C))
//   - Space: O(R·C)
func FindPath(g *gridgraph.GridGraph, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// 2) Validate grid is non-nil
	if g == nil {
		return Result{}, ErrNilGrid
	}

	began := time.Now()
	res, err := search(g, start, goal, cfg.Heuristic)
	elapsed := time.Since(began)
	if err != nil {
		logger.Error("astar: search aborted",
			slog.String("start", start.String()),
			slog.String("goal", goal.String()),
			slog.Any("error", err),
		)
		return Result{}, err
	}

	if cfg.Observer != nil {
		cfg.Observer.ObserveSearch(res, elapsed)
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("astar: search finished",
			slog.String("start", start.String()),
			slog.String("goal", goal.String()),
			slog.String("status", res.Status.String()),
			slog.Int("expanded", res.Expanded),
			slog.Float64("cost", res.Cost),
			slog.Duration("elapsed", elapsed),
		)
	}

	return res, nil
}

// Check runs the FindPath preconditions without searching. It returns the
// failing Status, StatusTrivialPath when start equals goal, or 0 when a
// search is required. A nil grid has no cells, so start is reported as
// StatusInvalidStart.
func Check(g *gridgraph.GridGraph, start, goal gridgraph.Cell) Status {
	switch {
	case g == nil:
		return StatusInvalidStart
	case !g.InBounds(start.Row, start.Col):
		return StatusInvalidStart
	case !g.InBounds(goal.Row, goal.Col):
		return StatusInvalidGoal
	case !g.IsOpen(start.Row, start.Col):
		return StatusBlockedStart
	case !g.IsOpen(goal.Row, goal.Col):
		return StatusBlockedGoal
	case start == goal:
		return StatusTrivialPath
	}

	return 0
}

func search(g *gridgraph.GridGraph, start, goal gridgraph.Cell, h heuristic.Func) (Result, error) {
	switch st := Check(g, start, goal); st {
	case 0:
	case StatusTrivialPath:
		return Result{Status: st, Path: []gridgraph.Cell{start}}, nil
	default:
		return Result{Status: st}, nil
	}

	r := newRunner(g, goal, h)
	r.init(start)
	if !r.process() {
		return Result{Status: StatusNotFound, Expanded: r.expanded}, nil
	}

	path, err := reconstruct(g, r.records, start, goal)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Status:   StatusFound,
		Path:     path,
		Cost:     r.records[g.Index(goal)].g,
		Expanded: r.expanded,
	}, nil
}

// cellRecord is the per-cell search bookkeeping. A parent equal to the
// cell itself marks the start of the chain (or an unreached cell).
type cellRecord struct {
	g, h, f float64
	parent  gridgraph.Cell
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *gridgraph.GridGraph // The input grid; read-only within the search.
	goal     gridgraph.Cell       // Target cell.
	h        heuristic.Func       // Remaining-cost estimate.
	records  []cellRecord         // Dense row-major table of per-cell records.
	closed   []bool               // Cells already expanded.
	open     openSet              // Min-heap of (f, cell) with lazy decrease-key.
	seq      uint64               // Insertion counter used as heap tie-breaker.
	expanded int                  // Number of cells expanded.
}

func newRunner(g *gridgraph.GridGraph, goal gridgraph.Cell, h heuristic.Func) *runner {
	n := g.Size()

	return &runner{
		g:       g,
		goal:    goal,
		h:       h,
		records: make([]cellRecord, n),
		closed:  make([]bool, n),
		open:    make(openSet, 0, 64),
	}
}

// init resets every record to (+∞, +∞, +∞, self) and seeds the open set with start.
func (r *runner) init(start gridgraph.Cell) {
	inf := math.Inf(1)
	for i := range r.records {
		r.records[i] = cellRecord{g: inf, h: inf, f: inf, parent: r.g.Coordinate(i)}
	}
	r.records[r.g.Index(start)] = cellRecord{parent: start}

	heap.Init(&r.open)
	r.push(0, start)
}

// process is the expansion loop. It reports whether the goal was discovered;
// false means the open set was exhausted.
func (r *runner) process() bool {
	for r.open.Len() > 0 {
		// 1) Pop the smallest-f entry.
		item := heap.Pop(&r.open).(openItem)
		ci := r.g.Index(item.cell)

		// 2) A closed cell here is a stale duplicate; skip it.
		if r.closed[ci] {
			continue
		}
		r.closed[ci] = true
		r.expanded++

		// 3) Relax all neighbors; stop as soon as the goal is seen.
		if r.relax(item.cell) {
			return true
		}
	}

	return false
}

// relax examines each neighbor of cur. It returns true when the goal is one
// of them, after linking the goal's parent to cur.
func (r *runner) relax(cur gridgraph.Cell) bool {
	base := r.records[r.g.Index(cur)].g
	for _, d := range r.g.NeighborOffsets() {
		nr, nc := cur.Row+d.Row, cur.Col+d.Col
		if !r.g.InBounds(nr, nc) || !r.g.IsOpen(nr, nc) {
			continue
		}
		next := gridgraph.Cell{Row: nr, Col: nc}
		ni := r.g.Index(next)
		if r.closed[ni] {
			continue
		}

		gNew := base + stepCost
		if next == r.goal {
			rec := &r.records[ni]
			rec.g = gNew
			rec.parent = cur
			return true
		}

		hNew := r.h(nr, nc, r.goal)
		fNew := gNew + hNew
		// Relax only if never reached or strictly better.
		if rec := &r.records[ni]; math.IsInf(rec.f, 1) || fNew < rec.f {
			*rec = cellRecord{g: gNew, h: hNew, f: fNew, parent: cur}
			r.push(fNew, next)
		}
	}

	return false
}

func (r *runner) push(f float64, c gridgraph.Cell) {
	heap.Push(&r.open, openItem{f: f, seq: r.seq, cell: c})
	r.seq++
}
