package search_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/moves"
	"github.com/katalvlaran/gridpath/search"
)

// TestConcurrentRuns shares one read-only tiled board between parallel runs;
// every run must agree with the sequential tree and leave no goroutine behind.
func TestConcurrentRuns(t *testing.T) {
	defer goleak.VerifyNone(t)

	base := mustGrid(t, riskBoard)
	tiled, err := board.NewTiled[int](base, 3, 3, board.CyclicWrap[int](9))
	require.NoError(t, err)
	gen, err := moves.New[int](tiled, nil)
	require.NoError(t, err)

	problem := func(src board.Cell) search.Problem[board.Cell] {
		return search.Problem[board.Cell]{
			Sources:   []board.Cell{src},
			Neighbors: gen.Neighbors,
			Cost:      cost.EnterValue[int](tiled),
		}
	}
	want, err := search.Explore(problem(board.Cell{}))
	require.NoError(t, err)
	require.Equal(t, 15*15, want.Len())

	var g errgroup.Group
	trees := make([]map[board.Cell]int64, 8)
	for i := range trees {
		i := i
		g.Go(func() error {
			res, err := search.Explore(problem(board.Cell{}))
			if err != nil {
				return err
			}
			trees[i] = res.Distances()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, got := range trees {
		if diff := cmp.Diff(want.Distances(), got); diff != "" {
			t.Fatalf("run %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}
