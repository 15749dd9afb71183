package moves

import (
	"fmt"

	"github.com/katalvlaran/gridpath/board"
)

// Generator yields the admissible neighbors of cells on a board.
// It holds no mutable state and is safe for concurrent use.
type Generator[T any] struct {
	b      board.Board[T]
	norm   board.Normalizer // nil for boards with one spelling per cell
	allow  Predicate[T]
	deltas []board.Delta
	wait   bool
}

// New builds a Generator over b. A nil allow admits every in-range move.
// Returns ErrNilBoard for a nil board and ErrNoMoves when the options leave
// nothing to try.
func New[T any](b board.Board[T], allow Predicate[T], opts ...Option) (*Generator[T], error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	o, err := build(opts)
	if err != nil {
		return nil, err
	}
	if allow == nil {
		allow = Any[T]()
	}
	norm, _ := b.(board.Normalizer)
	return &Generator[T]{b: b, norm: norm, allow: allow, deltas: o.Deltas, wait: o.Wait}, nil
}

// Neighbors returns the admissible moves from c. Targets outside the board
// are skipped; c itself must be on the board or an *board.OutOfRangeError
// is returned. On a board implementing board.Normalizer every target is
// canonical and appears once, even when several deltas wrap onto it.
//
// Complexity: O(d²) worst case for d deltas on a normalizing board (the
// duplicate check), O(d) otherwise.
func (g *Generator[T]) Neighbors(c board.Cell) ([]board.Cell, error) {
	// 1) Validate the source and read its value.
	fromV, err := g.b.ValueAt(c)
	if err != nil {
		return nil, fmt.Errorf("moves: expanding %s: %w", c, err)
	}
	if g.norm != nil {
		c = g.norm.Normalize(c)
	}

	out := make([]board.Cell, 0, len(g.deltas)+1)
	// 2) Wait move, then every delta in table order.
	if g.wait && g.allow(c, c, fromV, fromV) {
		out = append(out, c)
	}
	for _, d := range g.deltas {
		to := c.Add(d)
		if !g.b.Contains(to) {
			continue
		}
		// 3) Canonicalize on periodic boards. On tiny tori several deltas
		//    land on one target, or back on c; staying put is the wait move.
		if g.norm != nil {
			to = g.norm.Normalize(to)
			if to == c || contains(out, to) {
				continue
			}
		}
		toV, err := g.b.ValueAt(to)
		if err != nil {
			return nil, err
		}
		// 4) Admissibility.
		if g.allow(c, to, fromV, toV) {
			out = append(out, to)
		}
	}
	return out, nil
}

func contains(cells []board.Cell, c board.Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}

// TimedGenerator yields moves through a Timeline. Each move, including the
// wait move, advances the phase by one step; the predicate sees the source
// value at the current phase and the target value at the arrival phase.
type TimedGenerator[T any] struct {
	tl     *board.Timeline[T]
	allow  Predicate[T]
	deltas []board.Delta
	wait   bool
}

// NewTimed builds a TimedGenerator over tl. A nil allow admits every move.
func NewTimed[T any](tl *board.Timeline[T], allow Predicate[T], opts ...Option) (*TimedGenerator[T], error) {
	if tl == nil {
		return nil, ErrNilBoard
	}
	o, err := build(opts)
	if err != nil {
		return nil, err
	}
	if allow == nil {
		allow = Any[T]()
	}
	return &TimedGenerator[T]{tl: tl, allow: allow, deltas: o.Deltas, wait: o.Wait}, nil
}

// Neighbors returns the admissible timed moves from n.
// Complexity: O(d) where d is the number of deltas.
func (g *TimedGenerator[T]) Neighbors(n board.Timed) ([]board.Timed, error) {
	// 1) Source value at the current phase, target snapshot at the next.
	fromV, err := g.tl.ValueAt(board.Timed{Phase: g.tl.Phase(n.Phase), Cell: n.Cell})
	if err != nil {
		return nil, fmt.Errorf("moves: expanding %s: %w", n, err)
	}
	next := g.tl.Phase(n.Phase + 1)
	arrival := g.tl.SnapshotAt(next)

	// 2) Every candidate, wait first, is judged on the arrival snapshot.
	out := make([]board.Timed, 0, len(g.deltas)+1)
	try := func(to board.Cell) {
		toV, err := arrival.ValueAt(to)
		if err != nil {
			return
		}
		if g.allow(n.Cell, to, fromV, toV) {
			out = append(out, board.Timed{Phase: next, Cell: to})
		}
	}
	if g.wait {
		try(n.Cell)
	}
	for _, d := range g.deltas {
		try(n.Cell.Add(d))
	}
	return out, nil
}
