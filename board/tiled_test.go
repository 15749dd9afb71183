package board_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/board"
)

func wrap9(x int) int { return (x-1)%9 + 1 }

// TestTiled_SingleCellRow checks the 1..9 cyclic rule on a one-cell block.
func TestTiled_SingleCellRow(t *testing.T) {
	g, err := board.NewGrid([][]int{{8}})
	require.NoError(t, err)
	tb, err := board.NewTiled(g, 5, 5, board.CyclicWrap(9))
	require.NoError(t, err)

	var row []int
	for c := 0; c < tb.Width(); c++ {
		v, err := tb.ValueAt(board.Cell{Row: 0, Col: c})
		require.NoError(t, err)
		row = append(row, v)
	}
	assert.Equal(t, []int{8, 9, 1, 2, 3}, row)

	v, err := tb.ValueAt(board.Cell{Row: 4, Col: 4})
	require.NoError(t, err)
	assert.Equal(t, 7, v) // 8+8 wraps to 7
}

// TestTiled_AdditiveUnderWrap verifies valueAt(r+H,c) == wrap(valueAt(r,c)+1)
// and the same for column steps, for every in-range cell.
func TestTiled_AdditiveUnderWrap(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	const h, w = 3, 4
	vals := make([][]int, h)
	for r := range vals {
		vals[r] = make([]int, w)
		for c := range vals[r] {
			vals[r][c] = 1 + rng.Intn(9)
		}
	}
	g, err := board.NewGrid(vals)
	require.NoError(t, err)
	tb, err := board.NewTiled(g, 5, 5, board.CyclicWrap(9))
	require.NoError(t, err)
	require.Equal(t, 15, tb.Height())
	require.Equal(t, 20, tb.Width())

	for r := 0; r < tb.Height(); r++ {
		for c := 0; c < tb.Width(); c++ {
			v, err := tb.ValueAt(board.Cell{Row: r, Col: c})
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, 9)
			if r+h < tb.Height() {
				below, err := tb.ValueAt(board.Cell{Row: r + h, Col: c})
				require.NoError(t, err)
				require.Equal(t, wrap9(v+1), below, "row step at (%d,%d)", r, c)
			}
			if c+w < tb.Width() {
				right, err := tb.ValueAt(board.Cell{Row: r, Col: c + w})
				require.NoError(t, err)
				require.Equal(t, wrap9(v+1), right, "col step at (%d,%d)", r, c)
			}
		}
	}
}

// TestTiled_Bounds covers the declared multiple and bad repeat counts.
func TestTiled_Bounds(t *testing.T) {
	g, err := board.NewGrid([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_, err = board.NewTiled(g, 0, 2, nil)
	assert.True(t, errors.Is(err, board.ErrBadRepeat))

	tb, err := board.NewTiled(g, 2, 3, nil)
	require.NoError(t, err)
	v, err := tb.ValueAt(board.Cell{Row: 3, Col: 5})
	require.NoError(t, err)
	assert.Equal(t, 4, v, "identity transform repeats values")

	_, err = tb.ValueAt(board.Cell{Row: 4, Col: 0})
	assert.True(t, errors.Is(err, board.ErrOutOfRange))
	_, err = tb.ValueAt(board.Cell{Row: 0, Col: 6})
	assert.True(t, errors.Is(err, board.ErrOutOfRange))
}
