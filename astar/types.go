package astar

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridstar/gridgraph"
	"github.com/katalvlaran/gridstar/heuristic"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilHeuristic indicates that WithHeuristic was given a nil function.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrInternalInconsistency indicates a corrupted parent chain: walking
	// back from the goal did not reach the start within Rows×Cols steps.
	ErrInternalInconsistency = errors.New("astar: internal inconsistency")
)

// Status classifies the outcome of a search.
type Status int

const (
	// StatusInvalidStart: start lies outside the grid.
	StatusInvalidStart Status = iota + 1
	// StatusInvalidGoal: goal lies outside the grid.
	StatusInvalidGoal
	// StatusBlockedStart: start is in bounds but not traversable.
	StatusBlockedStart
	// StatusBlockedGoal: goal is in bounds but not traversable.
	StatusBlockedGoal
	// StatusTrivialPath: start equals goal.
	StatusTrivialPath
	// StatusFound: a path from start to goal was found.
	StatusFound
	// StatusNotFound: the open set was exhausted without reaching the goal.
	StatusNotFound
)

var statusNames = map[Status]string{
	StatusInvalidStart: "invalid_start",
	StatusInvalidGoal:  "invalid_goal",
	StatusBlockedStart: "blocked_start",
	StatusBlockedGoal:  "blocked_goal",
	StatusTrivialPath:  "trivial_path",
	StatusFound:        "found",
	StatusNotFound:     "not_found",
}

// Statuses lists every outcome in precondition order.
var Statuses = []Status{
	StatusInvalidStart, StatusInvalidGoal, StatusBlockedStart, StatusBlockedGoal,
	StatusTrivialPath, StatusFound, StatusNotFound,
}

// String returns the snake_case name of s.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("status(%d)", int(s))
}

// MarshalText encodes s by name.
func (s Status) MarshalText() ([]byte, error) {
	if _, ok := statusNames[s]; !ok {
		return nil, fmt.Errorf("astar: unknown status %d", int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText decodes a name produced by MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	for st, name := range statusNames {
		if name == string(text) {
			*s = st
			return nil
		}
	}

	return fmt.Errorf("astar: unknown status %q", text)
}

// Result is the outcome of one FindPath call.
type Result struct {
	Status Status
	// Path holds the cells from start to goal inclusive for StatusFound,
	// the single start cell for StatusTrivialPath, and nil otherwise.
	Path []gridgraph.Cell
	// Cost is the number of steps along Path, each step costing 1.0.
	Cost float64
	// Expanded counts the cells popped from the open set and expanded.
	Expanded int
}

// HasPath reports whether r carries a path (StatusFound or StatusTrivialPath).
func (r Result) HasPath() bool {
	return r.Status == StatusFound || r.Status == StatusTrivialPath
}

// Observer receives every completed search. Implementations must be safe for
// concurrent use when searches run concurrently.
type Observer interface {
	ObserveSearch(res Result, elapsed time.Duration)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(res Result, elapsed time.Duration)

// ObserveSearch calls f(res, elapsed).
func (f ObserverFunc) ObserveSearch(res Result, elapsed time.Duration) { f(res, elapsed) }

// Options configures FindPath.
//
// Heuristic – estimate of remaining cost; default heuristic.Euclidean.
// Observer  – optional hook invoked once per completed search.
// Logger    – structured logger; nil means slog.Default().
type Options struct {
	Heuristic heuristic.Func
	Observer  Observer
	Logger    *slog.Logger
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithHeuristic sets the remaining-cost estimate.
// A nil function panics with ErrNilHeuristic, signalling invalid configuration early.
func WithHeuristic(h heuristic.Func) Option {
	if h == nil {
		panic(ErrNilHeuristic.Error())
	}

	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithObserver registers a hook called after each search that produced a Result.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithLogger routes search logging to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the options FindPath starts from before applying
// functional overrides: Euclidean heuristic, no observer, default logger.
func DefaultOptions() Options {
	return Options{
		Heuristic: heuristic.Euclidean,
	}
}
