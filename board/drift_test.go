package board_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/board"
)

var exampleValley = []string{
	"#.######",
	"#>>.<^<#",
	"#.<..<<#",
	"#>v.><>#",
	"#<^v^^>#",
	"######.#",
}

// TestDrift_Period checks SnapshotAt(t) == SnapshotAt(t+period) for the
// declared period lcm(H-2, W-2).
func TestDrift_Period(t *testing.T) {
	d, err := board.NewDrift(exampleValley)
	require.NoError(t, err)
	require.Equal(t, 12, d.Period())

	for ts := 0; ts < 30; ts++ {
		assert.Equal(t, d.Fingerprint(ts), d.Fingerprint(ts+d.Period()), "t=%d", ts)
		assert.Same(t, d.SnapshotAt(ts), d.SnapshotAt(ts+d.Period()))
	}
	assert.NotEqual(t, d.Fingerprint(0), d.Fingerprint(1))
	assert.Same(t, d.SnapshotAt(11), d.SnapshotAt(-1))
}

// TestDrift_Movement follows two obstacles through a 1×3 interior.
func TestDrift_Movement(t *testing.T) {
	d, err := board.NewDrift([]string{
		"#.###",
		"#>.<#",
		"###.#",
	})
	require.NoError(t, err)
	require.Equal(t, 3, d.Period())

	row := func(ts int) string {
		snap := d.SnapshotAt(ts)
		out := make([]rune, snap.Width())
		for c := range out {
			v, err := snap.ValueAt(board.Cell{Row: 1, Col: c})
			require.NoError(t, err)
			out[c] = v
		}
		return string(out)
	}
	assert.Equal(t, "#>.<#", row(0))
	assert.Equal(t, "#.2.#", row(1))
	assert.Equal(t, "#<.>#", row(2))
	assert.Equal(t, "#>.<#", row(3))

	v, err := d.ValueAt(board.Timed{Phase: 1, Cell: board.Cell{Row: 0, Col: 1}})
	require.NoError(t, err)
	assert.Equal(t, board.Open, v)

	assert.Equal(t, []board.Cell{{Row: 0, Col: 1}}, d.Gaps(0))
	assert.Equal(t, []board.Cell{{Row: 2, Col: 3}}, d.Gaps(2))
}

func TestDrift_Errors(t *testing.T) {
	_, err := board.NewDrift(nil)
	assert.True(t, errors.Is(err, board.ErrEmptyGrid))

	_, err = board.NewDrift([]string{"##", "##"})
	assert.True(t, errors.Is(err, board.ErrEmptyGrid))

	_, err = board.NewTimeline[int](nil)
	assert.True(t, errors.Is(err, board.ErrNoSnapshots))
}
