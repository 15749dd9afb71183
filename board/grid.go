package board

import (
	"tailscale.com/util/deephash"
)

// Grid is a finite rectangular board. It is immutable once built.
type Grid[T any] struct {
	height, width int
	cells         [][]T
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of values has no effect.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(H×W) time and memory.
func NewGrid[T any](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]T, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]T, w)
		copy(cells[r], values[r])
	}

	return &Grid[T]{height: h, width: w, cells: cells}, nil
}

// FromLines builds a rune grid with one row per line.
func FromLines(lines []string) (*Grid[rune], error) {
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	return NewGrid(rows)
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Contains reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// ValueAt returns the value stored at c, or an *OutOfRangeError.
func (g *Grid[T]) ValueAt(c Cell) (T, error) {
	if !g.Contains(c) {
		var zero T
		return zero, &OutOfRangeError{Cell: c, Height: g.height, Width: g.width}
	}
	return g.cells[c.Row][c.Col], nil
}

// at is the unchecked lookup used by wrappers that already normalized c.
func (g *Grid[T]) at(c Cell) T {
	return g.cells[c.Row][c.Col]
}

// Find returns every cell whose value satisfies match, in row-major order.
func (g *Grid[T]) Find(match func(T) bool) []Cell {
	var out []Cell
	for r, row := range g.cells {
		for c, v := range row {
			if match(v) {
				out = append(out, Cell{Row: r, Col: c})
			}
		}
	}
	return out
}

// Map returns a new grid with fn applied to every value.
func Map[T, U any](g *Grid[T], fn func(Cell, T) U) *Grid[U] {
	cells := make([][]U, g.height)
	for r, row := range g.cells {
		cells[r] = make([]U, g.width)
		for c, v := range row {
			cells[r][c] = fn(Cell{Row: r, Col: c}, v)
		}
	}
	return &Grid[U]{height: g.height, width: g.width, cells: cells}
}

// Fingerprint returns a content hash of the stored values. Two grids with
// equal extent and values share a fingerprint.
func (g *Grid[T]) Fingerprint() deephash.Sum {
	return deephash.Hash(&g.cells)
}
