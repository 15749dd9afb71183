package extract

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/search"
)

var (
	// ErrEmptyPath indicates a path without any node.
	ErrEmptyPath = errors.New("extract: path is empty")

	// ErrTooFew indicates fewer sizes than requested by LargestProduct.
	ErrTooFew = errors.New("extract: not enough sizes")
)

// GoalCost returns the cost of the goal reached by res, or search.ErrNoPath.
func GoalCost[N comparable](res *search.Result[N]) (int64, error) {
	if res == nil || !res.Found {
		return 0, search.ErrNoPath
	}
	return res.Cost, nil
}

// PathValueSum adds the value of every cell on path except the first: the
// entry cost of walking the path from its source.
func PathValueSum[T constraints.Integer](b board.Board[T], path []board.Cell) (int64, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}
	var sum int64
	for _, c := range path[1:] {
		v, err := b.ValueAt(c)
		if err != nil {
			return 0, fmt.Errorf("extract: %w", err)
		}
		sum += int64(v)
	}
	return sum, nil
}

// Steps returns the number of moves in path; a single-node path has 0.
func Steps[N any](path []N) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}

// ReachableCount returns how many nodes res closed.
func ReachableCount[N comparable](res *search.Result[N]) int {
	if res == nil {
		return 0
	}
	return res.Len()
}

// Farthest returns the largest optimal cost among the nodes res closed.
func Farthest[N comparable](res *search.Result[N]) int64 {
	var best int64
	if res == nil {
		return best
	}
	for _, d := range maps.Values(res.Distances()) {
		if d > best {
			best = d
		}
	}
	return best
}

// LargestProduct multiplies the k largest values of sizes.
// sizes is not modified.
func LargestProduct(sizes []int, k int) (int, error) {
	if k <= 0 || len(sizes) < k {
		return 0, fmt.Errorf("%w: want %d, have %d", ErrTooFew, k, len(sizes))
	}
	sorted := append([]int(nil), sizes...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	product := 1
	for _, s := range sorted[:k] {
		product *= s
	}
	return product, nil
}
