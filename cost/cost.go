// Package cost provides edge-cost models for grid searches.
//
// A Func maps a move (from, to) to a non-negative integer cost. Unit gives the
// unweighted, BFS-equivalent regime; EnterValue charges the value of the
// entered cell, so the source cell itself is never paid for.
//
// Costs must never be negative. Checked and Validate turn
// them into an *InvalidCostError; the search engine applies Validate to every
// relaxed edge.
package cost

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/gridpath/board"
)

// ErrInvalidCost indicates a negative edge cost.
var ErrInvalidCost = errors.New("cost: edge cost must be non-negative")

// InvalidCostError reports the move that produced a negative cost.
type InvalidCostError struct {
	From, To any
	Cost     int64
}

func (e *InvalidCostError) Error() string {
	return fmt.Sprintf("cost: negative cost %d on move %v→%v", e.Cost, e.From, e.To)
}

// Is makes errors.Is(err, ErrInvalidCost) hold for any *InvalidCostError.
func (e *InvalidCostError) Is(target error) bool {
	return target == ErrInvalidCost
}

// Func returns the cost of moving from one node to a neighbor.
type Func[N any] func(from, to N) (int64, error)

// Unit charges 1 for every move.
func Unit[N any]() Func[N] {
	return func(_, _ N) (int64, error) { return 1, nil }
}

// Constant charges c for every move. A negative c yields an *InvalidCostError
// on first use.
func Constant[N any](c int64) Func[N] {
	return Checked(func(_, _ N) (int64, error) { return c, nil })
}

// EnterValue charges the board value of the destination cell.
func EnterValue[T constraints.Integer](b board.Board[T]) Func[board.Cell] {
	return Checked(func(_, to board.Cell) (int64, error) {
		v, err := b.ValueAt(to)
		if err != nil {
			return 0, err
		}
		return int64(v), nil
	})
}

// Checked wraps f so that negative costs become an *InvalidCostError.
func Checked[N any](f Func[N]) Func[N] {
	return func(from, to N) (int64, error) {
		c, err := f(from, to)
		if err != nil {
			return 0, err
		}
		if err := Validate(from, to, c); err != nil {
			return 0, err
		}
		return c, nil
	}
}

// Validate returns an *InvalidCostError when c is negative.
func Validate(from, to any, c int64) error {
	if c < 0 {
		return &InvalidCostError{From: from, To: to, Cost: c}
	}
	return nil
}
