package moves

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/gridpath/board"
)

// Sentinel errors for generator construction.
var (
	// ErrNilBoard indicates a nil board or timeline.
	ErrNilBoard = errors.New("moves: board is nil")
	// ErrNoMoves indicates an empty delta set without a wait move.
	ErrNoMoves = errors.New("moves: no deltas and no wait move")
)

// Connectivity selects a default delta set.
type Connectivity int

const (
	// Conn4 uses 4-directional moves: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional moves: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	orthogonal = []board.Delta{{DRow: -1}, {DCol: 1}, {DRow: 1}, {DCol: -1}}
	octagonal  = []board.Delta{
		{DRow: -1}, {DRow: -1, DCol: 1}, {DCol: 1}, {DRow: 1, DCol: 1},
		{DRow: 1}, {DRow: 1, DCol: -1}, {DCol: -1}, {DRow: -1, DCol: -1},
	}
)

// Deltas returns a fresh copy of the delta set for conn.
func Deltas(conn Connectivity) []board.Delta {
	src := orthogonal
	if conn == Conn8 {
		src = octagonal
	}
	out := make([]board.Delta, len(src))
	copy(out, src)
	return out
}

// Options configures neighbor generation.
type Options struct {
	// Deltas are the spatial moves tried from every cell.
	Deltas []board.Delta
	// Wait adds the zero move.
	Wait bool
}

// Option is a functional option for Options.
type Option func(*Options)

// DefaultOptions returns Conn4 deltas without a wait move.
func DefaultOptions() Options {
	return Options{Deltas: Deltas(Conn4)}
}

// WithConn replaces the delta set with the one for conn.
func WithConn(conn Connectivity) Option {
	return func(o *Options) {
		o.Deltas = Deltas(conn)
	}
}

// WithDeltas replaces the delta set with ds. A zero delta is treated as
// WithWait and duplicates are dropped.
func WithDeltas(ds ...board.Delta) Option {
	return func(o *Options) {
		o.Deltas = o.Deltas[:0:0]
		seen := make(map[board.Delta]bool, len(ds))
		for _, d := range ds {
			if d == (board.Delta{}) {
				o.Wait = true
				continue
			}
			if seen[d] {
				continue
			}
			seen[d] = true
			o.Deltas = append(o.Deltas, d)
		}
	}
}

// WithWait enables the wait-in-place move.
func WithWait() Option {
	return func(o *Options) {
		o.Wait = true
	}
}

// Predicate reports whether moving from one cell to another is admissible,
// given both cells' values.
type Predicate[T any] func(from, to board.Cell, fromV, toV T) bool

// Any admits every in-range move.
func Any[T any]() Predicate[T] {
	return func(_, _ board.Cell, _, _ T) bool { return true }
}

// ClimbAtMost admits a move when the target is at most step higher.
func ClimbAtMost[T constraints.Integer | constraints.Float](step T) Predicate[T] {
	return func(_, _ board.Cell, fromV, toV T) bool {
		return toV <= fromV+step
	}
}

// DescendAtMost admits a move when the target is at most step lower.
// It is ClimbAtMost for a search run in the reverse direction.
func DescendAtMost[T constraints.Integer | constraints.Float](step T) Predicate[T] {
	return func(_, _ board.Cell, fromV, toV T) bool {
		return toV >= fromV-step
	}
}

// Rising admits a move to a strictly higher target below ceiling.
func Rising[T constraints.Ordered](ceiling T) Predicate[T] {
	return func(_, _ board.Cell, fromV, toV T) bool {
		return fromV < toV && toV < ceiling
	}
}

// Passable admits a move whose target value is one of open.
func Passable[T comparable](open ...T) Predicate[T] {
	set := make(map[T]struct{}, len(open))
	for _, v := range open {
		set[v] = struct{}{}
	}
	return func(_, _ board.Cell, _, toV T) bool {
		_, ok := set[toV]
		return ok
	}
}

// All admits a move only when every predicate does.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(from, to board.Cell, fromV, toV T) bool {
		for _, p := range preds {
			if !p(from, to, fromV, toV) {
				return false
			}
		}
		return true
	}
}

func build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.Deltas) == 0 && !o.Wait {
		return o, ErrNoMoves
	}
	return o, nil
}
