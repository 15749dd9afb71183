package search

import (
	"github.com/katalvlaran/gridpath/board"
)

// Zero is the zero heuristic; with it the engine behaves as Dijkstra, or as
// BFS under unit costs.
func Zero[N any]() Heuristic[N] {
	return func(N) int64 { return 0 }
}

// Manhattan estimates the L1 distance to the nearest target scaled by
// minStep, the smallest cost any single move can have. It is admissible and
// consistent for 4-directional moves whose cost is at least minStep on
// bounded boards; on a torus use TorusManhattan.
func Manhattan(minStep int64, targets ...board.Cell) Heuristic[board.Cell] {
	return func(c board.Cell) int64 {
		return minStep * int64(nearest(c, targets))
	}
}

// ManhattanTimed is Manhattan for timed nodes; the phase is ignored.
func ManhattanTimed(minStep int64, targets ...board.Cell) Heuristic[board.Timed] {
	return func(n board.Timed) int64 {
		return minStep * int64(nearest(n.Cell, targets))
	}
}

// TorusManhattan is Manhattan on a height×width torus, where each axis
// distance is the shorter way round.
func TorusManhattan(minStep int64, height, width int, targets ...board.Cell) Heuristic[board.Cell] {
	return func(c board.Cell) int64 {
		if len(targets) == 0 {
			return 0
		}
		best := -1
		for _, t := range targets {
			d := wrapped(c.Row-t.Row, height) + wrapped(c.Col-t.Col, width)
			if best < 0 || d < best {
				best = d
			}
		}
		return minStep * int64(best)
	}
}

// wrapped returns the shorter of the two ways round a ring of size n.
func wrapped(delta, n int) int {
	delta %= n
	if delta < 0 {
		delta += n
	}
	return min(delta, n-delta)
}

func nearest(c board.Cell, targets []board.Cell) int {
	if len(targets) == 0 {
		return 0
	}
	best := c.Manhattan(targets[0])
	for _, t := range targets[1:] {
		if d := c.Manhattan(t); d < best {
			best = d
		}
	}
	return best
}
