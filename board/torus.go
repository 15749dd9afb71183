package board

// Torus wraps every coordinate modulo the stored extent. Values are never
// transformed and every cell is in range. Torus implements Normalizer, so
// neighbor generators hand out canonical cells in [0,H)×[0,W).
type Torus[T any] struct {
	base *Grid[T]
}

// NewTorus wraps base so that row and column indices repeat with its extent.
func NewTorus[T any](base *Grid[T]) (*Torus[T], error) {
	if base == nil {
		return nil, ErrEmptyGrid
	}
	return &Torus[T]{base: base}, nil
}

// Height returns the row period.
func (t *Torus[T]) Height() int { return t.base.height }

// Width returns the column period.
func (t *Torus[T]) Width() int { return t.base.width }

// Contains always reports true.
func (t *Torus[T]) Contains(Cell) bool { return true }

// ValueAt returns the stored value at c reduced modulo the extent.
func (t *Torus[T]) ValueAt(c Cell) (T, error) {
	return t.base.at(t.Normalize(c)), nil
}

// Normalize maps c into the stored extent, handling negative indices.
func (t *Torus[T]) Normalize(c Cell) Cell {
	return Cell{Row: mod(c.Row, t.base.height), Col: mod(c.Col, t.base.width)}
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
