package puzzles

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/extract"
	"github.com/katalvlaran/gridpath/moves"
	"github.com/katalvlaran/gridpath/search"
)

// basinRim is the height that belongs to no basin.
const basinRim = 9

// Basins returns the sum of risk levels (height + 1) of the low points of a
// digit height map (part 1) and the product of the s.BasinsTop largest basin
// sizes (part 2). A basin is everything reached from its low point by
// strictly rising steps below the rim height.
func Basins(lines []string, s Settings, log *zap.Logger) (Answer, error) {
	log = orNop(log)
	if err := s.Validate(); err != nil {
		return Answer{}, err
	}
	g, err := digits(lines)
	if err != nil {
		return Answer{}, err
	}
	adjacent, err := moves.New[int](g, nil)
	if err != nil {
		return Answer{}, err
	}
	rising, err := moves.New(g, moves.Rising(basinRim))
	if err != nil {
		return Answer{}, err
	}

	lows, err := lowPoints(g, adjacent)
	if err != nil {
		return Answer{}, err
	}

	var ans Answer
	sizes := make([]int, 0, len(lows))
	for _, low := range lows {
		v, _ := g.ValueAt(low)
		ans.Part1 += int64(v) + 1

		tree, err := search.Explore(search.Problem[board.Cell]{
			Sources:   []board.Cell{low},
			Neighbors: rising.Neighbors,
		}, search.WithLogger(log))
		if err != nil {
			return Answer{}, fmt.Errorf("basin at %s: %w", low, err)
		}
		sizes = append(sizes, extract.ReachableCount(tree))
	}

	product, err := extract.LargestProduct(sizes, s.BasinsTop)
	if err != nil {
		return Answer{}, fmt.Errorf("basins part 2: %w", err)
	}
	ans.Part2 = int64(product)

	log.Debug("basins solved",
		zap.Int("low_points", len(lows)),
		zap.Ints("sizes", sizes),
		zap.Int64("part1", ans.Part1),
		zap.Int64("part2", ans.Part2))
	return ans, nil
}

// lowPoints returns the cells lower than every adjacent cell, in row-major
// order.
func lowPoints(g *board.Grid[int], adjacent *moves.Generator[int]) ([]board.Cell, error) {
	var lows []board.Cell
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			cell := board.Cell{Row: r, Col: c}
			v, _ := g.ValueAt(cell)
			next, err := adjacent.Neighbors(cell)
			if err != nil {
				return nil, err
			}
			low := true
			for _, n := range next {
				if nv, _ := g.ValueAt(n); nv <= v {
					low = false
					break
				}
			}
			if low {
				lows = append(lows, cell)
			}
		}
	}
	return lows, nil
}
