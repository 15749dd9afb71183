package puzzles

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/moves"
	"github.com/katalvlaran/gridpath/search"
)

// Height-map markers.
const (
	hillStart  = 'S'
	hillSummit = 'E'
)

// elevation maps the start marker to 'a' and the summit marker to 'z'.
func elevation(_ board.Cell, r rune) rune {
	switch r {
	case hillStart:
		return 'a'
	case hillSummit:
		return 'z'
	}
	return r
}

type hillMap struct {
	heights *board.Grid[rune]
	start   board.Cell
	summit  board.Cell
}

func parseHills(lines []string) (*hillMap, error) {
	raw, err := board.FromLines(lines)
	if err != nil {
		return nil, err
	}
	start, err := single(raw.Find(func(r rune) bool { return r == hillStart }), "start marker")
	if err != nil {
		return nil, err
	}
	summit, err := single(raw.Find(func(r rune) bool { return r == hillSummit }), "summit marker")
	if err != nil {
		return nil, err
	}
	if bad := raw.Find(func(r rune) bool { return (r < 'a' || r > 'z') && r != hillStart && r != hillSummit }); len(bad) > 0 {
		return nil, fmt.Errorf("%w: height out of a-z at %s", ErrBadInput, bad[0])
	}
	return &hillMap{heights: board.Map(raw, elevation), start: start, summit: summit}, nil
}

// Hills returns the fewest steps from S to E climbing at most one unit per
// step (part 1) and the fewest steps from any lowest square (part 2). Part 2
// is one multi-source search from every 'a'.
func Hills(lines []string, s Settings, log *zap.Logger) (Answer, error) {
	log = orNop(log)
	hm, err := parseHills(lines)
	if err != nil {
		return Answer{}, err
	}
	gen, err := moves.New(hm.heights, moves.ClimbAtMost[rune](1))
	if err != nil {
		return Answer{}, err
	}

	climb := func(sources []board.Cell) (int64, error) {
		p := search.Problem[board.Cell]{
			Sources:   sources,
			Neighbors: gen.Neighbors,
			Goal:      func(c board.Cell) bool { return c == hm.summit },
		}
		if s.AStar {
			p.Heuristic = search.Manhattan(1, hm.summit)
		}
		res, err := search.Shortest(p, search.WithLogger(log))
		if err != nil {
			return 0, err
		}
		return res.Cost, nil
	}

	var ans Answer
	if ans.Part1, err = climb([]board.Cell{hm.start}); err != nil {
		return Answer{}, fmt.Errorf("hills part 1: %w", err)
	}
	lowest := hm.heights.Find(func(r rune) bool { return r == 'a' })
	if ans.Part2, err = climb(lowest); err != nil {
		return Answer{}, fmt.Errorf("hills part 2: %w", err)
	}

	log.Debug("hills solved",
		zap.Stringer("start", hm.start),
		zap.Stringer("summit", hm.summit),
		zap.Int("lowest", len(lowest)),
		zap.Int64("part1", ans.Part1),
		zap.Int64("part2", ans.Part2))
	return ans, nil
}

// HillsFromSummit computes the part 2 answer of Hills with a single search
// run backwards from E, descending at most one unit per step, that stops at
// the first lowest square.
func HillsFromSummit(lines []string) (int64, error) {
	hm, err := parseHills(lines)
	if err != nil {
		return 0, err
	}
	gen, err := moves.New(hm.heights, moves.DescendAtMost[rune](1))
	if err != nil {
		return 0, err
	}
	res, err := search.Shortest(search.Problem[board.Cell]{
		Sources:   []board.Cell{hm.summit},
		Neighbors: gen.Neighbors,
		Goal: func(c board.Cell) bool {
			v, err := hm.heights.ValueAt(c)
			return err == nil && v == 'a'
		},
	})
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}
