package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board construction and lookup.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("board: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrOutOfRange indicates a cell outside the board's logical extent.
	ErrOutOfRange = errors.New("board: cell out of range")
	// ErrBadRepeat indicates a non-positive tile repetition count.
	ErrBadRepeat = errors.New("board: repeat counts must be positive")
	// ErrNotPeriodic indicates a drift field whose state does not cycle with the expected period.
	ErrNotPeriodic = errors.New("board: drift field is not periodic")
)

// Cell is an integer (row, col) coordinate.
type Cell struct {
	Row, Col int
}

// Delta is a relative move between cells.
type Delta struct {
	DRow, DCol int
}

// Add returns the cell reached from c by moving d.
func (c Cell) Add(d Delta) Cell {
	return Cell{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Manhattan returns the L1 distance between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Timed is a cell at a time phase of a Timeline. Phase is always in [0, period).
type Timed struct {
	Phase int
	Cell
}

// String renders the node as "t=phase(row,col)".
func (t Timed) String() string {
	return fmt.Sprintf("t=%d%s", t.Phase, t.Cell)
}

// Board is a read-only scalar field over cells.
//
// Height and Width report the logical extent. Boards with unbounded extent
// (Torus) report their period instead and accept every cell in Contains.
type Board[T any] interface {
	Height() int
	Width() int
	Contains(c Cell) bool
	ValueAt(c Cell) (T, error)
}

// Normalizer is implemented by periodic boards whose cells have many
// spellings. Normalize returns the one canonical cell for c; searches key
// their state on canonical cells.
type Normalizer interface {
	Normalize(c Cell) Cell
}

// OutOfRangeError reports a lookup outside a board's logical extent.
type OutOfRangeError struct {
	Cell          Cell
	Height, Width int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("board: cell %s outside %dx%d extent", e.Cell, e.Height, e.Width)
}

// Is makes errors.Is(err, ErrOutOfRange) hold for any *OutOfRangeError.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
