package board

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// TileTransform derives the value of a tiled copy from the stored value v
// and the copy's tile indices.
type TileTransform[T any] func(v T, tileRow, tileCol int) T

// Identity leaves values unchanged in every tile.
func Identity[T any]() TileTransform[T] {
	return func(v T, _, _ int) T { return v }
}

// CyclicWrap adds the tile offset tileRow+tileCol to v and wraps the result
// into 1..modulus, so modulus+1 becomes 1.
//
//	wrap(x) = ((x - 1) % modulus) + 1
//
// Stored values are expected in 1..modulus.
func CyclicWrap[T constraints.Integer](modulus T) TileTransform[T] {
	return func(v T, tileRow, tileCol int) T {
		return (v+T(tileRow+tileCol)-1)%modulus + 1
	}
}

// Tiled repeats a base grid rows×cols times. Cells beyond the repeated
// extent are out of range.
type Tiled[T any] struct {
	base       *Grid[T]
	rows, cols int
	transform  TileTransform[T]
}

// NewTiled wraps base as a rows×cols repetition whose copies are derived by
// transform. A nil transform means Identity.
// Returns ErrBadRepeat if rows or cols is not positive.
func NewTiled[T any](base *Grid[T], rows, cols int, transform TileTransform[T]) (*Tiled[T], error) {
	if base == nil {
		return nil, ErrEmptyGrid
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadRepeat, rows, cols)
	}
	if transform == nil {
		transform = Identity[T]()
	}
	return &Tiled[T]{base: base, rows: rows, cols: cols, transform: transform}, nil
}

// Height returns the logical row count: base height × repeat rows.
func (t *Tiled[T]) Height() int { return t.base.height * t.rows }

// Width returns the logical column count: base width × repeat cols.
func (t *Tiled[T]) Width() int { return t.base.width * t.cols }

// Contains reports whether c lies within the repeated extent.
func (t *Tiled[T]) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < t.Height() && c.Col >= 0 && c.Col < t.Width()
}

// ValueAt resolves c to its base cell and applies the tile transform.
func (t *Tiled[T]) ValueAt(c Cell) (T, error) {
	if !t.Contains(c) {
		var zero T
		return zero, &OutOfRangeError{Cell: c, Height: t.Height(), Width: t.Width()}
	}
	h, w := t.base.height, t.base.width
	v := t.base.at(Cell{Row: c.Row % h, Col: c.Col % w})
	return t.transform(v, c.Row/h, c.Col/w), nil
}
