package puzzles

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/extract"
	"github.com/katalvlaran/gridpath/moves"
	"github.com/katalvlaran/gridpath/search"
)

// Risk returns the lowest total risk from the top-left to the bottom-right
// corner of the digit map (part 1) and of its tiled expansion (part 2). The
// risk of a path is the sum of the cells entered; the start is not counted.
func Risk(lines []string, s Settings, log *zap.Logger) (Answer, error) {
	log = orNop(log)
	if err := s.Validate(); err != nil {
		return Answer{}, err
	}
	g, err := digits(lines)
	if err != nil {
		return Answer{}, err
	}
	tiled, err := board.NewTiled(g, s.RiskTiles, s.RiskTiles, board.CyclicWrap(s.RiskModulus))
	if err != nil {
		return Answer{}, err
	}

	// Zero-risk cells make any positive step estimate inadmissible.
	var minStep int64 = 1
	if len(g.Find(func(v int) bool { return v < 1 })) > 0 {
		minStep = 0
	}

	var ans Answer
	if ans.Part1, err = lowestRisk(g, s.AStar, minStep, log); err != nil {
		return Answer{}, fmt.Errorf("risk part 1: %w", err)
	}
	if ans.Part2, err = lowestRisk(tiled, s.AStar, minStep, log); err != nil {
		return Answer{}, fmt.Errorf("risk part 2: %w", err)
	}

	log.Debug("risk solved",
		zap.Int("height", g.Height()),
		zap.Int("width", g.Width()),
		zap.Int("tiles", s.RiskTiles),
		zap.Int64("part1", ans.Part1),
		zap.Int64("part2", ans.Part2))
	return ans, nil
}

// lowestRisk searches b corner to corner and checks the goal cost against
// the value sum of the reconstructed path.
func lowestRisk(b board.Board[int], astar bool, minStep int64, log *zap.Logger) (int64, error) {
	gen, err := moves.New(b, nil)
	if err != nil {
		return 0, err
	}
	goal := board.Cell{Row: b.Height() - 1, Col: b.Width() - 1}
	p := search.Problem[board.Cell]{
		Sources:   []board.Cell{{}},
		Neighbors: gen.Neighbors,
		Cost:      cost.EnterValue(b),
		Goal:      func(c board.Cell) bool { return c == goal },
	}
	if astar {
		p.Heuristic = search.Manhattan(minStep, goal)
	}

	res, err := search.Shortest(p, search.WithReturnPath(), search.WithLogger(log))
	if err != nil {
		return 0, err
	}
	path, err := res.Path()
	if err != nil {
		return 0, err
	}
	sum, err := extract.PathValueSum(b, path)
	if err != nil {
		return 0, err
	}
	total, err := extract.GoalCost(res)
	if err != nil {
		return 0, err
	}
	if sum != total {
		return 0, fmt.Errorf("puzzles: path risk %d disagrees with search cost %d", sum, total)
	}
	return total, nil
}
