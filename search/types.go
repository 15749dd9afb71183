package search

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/cost"
)

// Sentinel errors returned by the engine.
var (
	// ErrNoPath indicates that no goal node is reachable from any source,
	// or that a queried node was never closed.
	ErrNoPath = errors.New("search: no path")

	// ErrNoSources indicates a Problem without sources.
	ErrNoSources = errors.New("search: at least one source is required")

	// ErrNilNeighbors indicates a Problem without a neighbor function.
	ErrNilNeighbors = errors.New("search: neighbor function is nil")

	// ErrNilGoal indicates a Shortest call without a goal predicate.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrPathNotRecorded indicates path reconstruction on a Result whose
	// predecessors were not kept.
	ErrPathNotRecorded = errors.New("search: predecessors not recorded; use WithReturnPath")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("search: MaxDistance must be non-negative")
)

// Heuristic estimates the remaining cost from a node to the nearest goal.
// It must never overestimate and should be consistent; the closed set makes
// the first pop of a node final.
type Heuristic[N any] func(N) int64

// Problem describes one search over an implicit graph.
type Problem[N comparable] struct {
	// Sources are the start nodes; duplicates are ignored. On a periodic
	// board pass canonical cells (see board.Normalizer).
	Sources []N
	// Neighbors returns the admissible moves from a node.
	Neighbors func(N) ([]N, error)
	// Cost prices a move. Nil charges 1 per move. It is called for every
	// generated edge, and a negative result fails the run.
	Cost cost.Func[N]
	// Heuristic guides the search toward the goal. Nil means 0 (Dijkstra/BFS).
	Heuristic Heuristic[N]
	// Goal ends a Shortest run at the first closed node it accepts.
	// Explore ignores it.
	Goal func(N) bool
}

// Options configures an engine run.
//
// ReturnPath  – keep the predecessor map so the Result can rebuild paths.
// MaxDistance – nodes whose cost would exceed this are not explored. Default math.MaxInt64.
// Logger      – receives one Debug summary per run. Default zap.NewNop().
type Options struct {
	ReturnPath  bool
	MaxDistance int64
	Logger      *zap.Logger
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap, no predecessor map
// and a no-op logger.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
		Logger:      zap.NewNop(),
	}
}

// WithReturnPath keeps predecessors for path reconstruction.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops exploration beyond cost max.
// Panics with ErrBadMaxDistance if max is negative.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithLogger sets the logger for run summaries. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
