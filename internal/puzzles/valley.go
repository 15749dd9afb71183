package puzzles

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/moves"
	"github.com/katalvlaran/gridpath/search"
)

// Valley returns the fewest minutes to cross a field of drifting obstacles
// from the gap in its top wall to the gap in its bottom wall (part 1), and
// the total for s.ValleyTrips crossings alternating direction (part 2). Each
// crossing starts at the phase the previous one arrived at.
func Valley(lines []string, s Settings, log *zap.Logger) (Answer, error) {
	log = orNop(log)
	if err := s.Validate(); err != nil {
		return Answer{}, err
	}
	d, err := board.NewDrift(lines)
	if err != nil {
		return Answer{}, err
	}
	entry, err := single(d.Gaps(0), "gap in the top wall")
	if err != nil {
		return Answer{}, err
	}
	exit, err := single(d.Gaps(d.Height()-1), "gap in the bottom wall")
	if err != nil {
		return Answer{}, err
	}
	gen, err := moves.NewTimed(d.Timeline, moves.Passable[rune](board.Open), moves.WithWait())
	if err != nil {
		return Answer{}, err
	}

	cross := func(phase int, from, to board.Cell) (*search.Result[board.Timed], error) {
		p := search.Problem[board.Timed]{
			Sources:   []board.Timed{{Phase: phase, Cell: from}},
			Neighbors: gen.Neighbors,
			Goal:      func(n board.Timed) bool { return n.Cell == to },
		}
		if s.AStar {
			p.Heuristic = search.ManhattanTimed(1, to)
		}
		return search.Shortest(p, search.WithLogger(log))
	}

	var (
		ans   Answer
		phase int
		total int64
	)
	from, to := entry, exit
	for trip := 1; trip <= s.ValleyTrips; trip++ {
		res, err := cross(phase, from, to)
		if err != nil {
			return Answer{}, fmt.Errorf("valley trip %d: %w", trip, err)
		}
		total += res.Cost
		phase = res.Goal.Phase
		if trip == 1 {
			ans.Part1 = res.Cost
		}
		log.Debug("valley trip",
			zap.Int("trip", trip),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Int64("minutes", res.Cost),
			zap.Int("arrival_phase", phase))
		from, to = to, from
	}
	ans.Part2 = total

	log.Debug("valley solved",
		zap.Int("period", d.Period()),
		zap.Int64("part1", ans.Part1),
		zap.Int64("part2", ans.Part2))
	return ans, nil
}
