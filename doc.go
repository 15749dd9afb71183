// Package gridpath is a shortest-path toolkit for 2D grid puzzles.
//
// One best-first engine serves BFS, Dijkstra and A*; what varies between
// puzzles is injected as small policies:
//
//	board/     Cell, Board[T]; finite Grid, value-transforming Tiled, Torus,
//	           periodic Timeline and the Drift obstacle field
//	moves/     neighbor generation: Conn4/Conn8/custom deltas, wait, predicates
//	cost/      edge cost functions and InvalidCostError
//	search/    Problem, Shortest, Explore, Result, path reconstruction, heuristics
//	extract/   puzzle answers from results and paths
//
// The internal/puzzles drivers and cmd/gridpath put the pieces together for
// the hill-climbing, risk-map, drifting-valley and smoke-basin puzzles.
//
// Quick start:
//
//	g, _ := board.NewGrid(values)
//	gen, _ := moves.New[int](g, nil)
//	res, err := search.Shortest(search.Problem[board.Cell]{
//		Sources:   []board.Cell{{}},
//		Neighbors: gen.Neighbors,
//		Cost:      cost.EnterValue[int](g),
//		Goal:      func(c board.Cell) bool { return c == goal },
//	})
//
// Boards are read-only after construction and may be shared by concurrent
// searches; every search call owns its own state.
package gridpath
