// Package puzzles drives the grid puzzles solved with the gridpath packages.
//
// Each solver parses its row-per-line input into a board, wires a neighbor
// generator and a cost model, runs the search engine and extracts two
// answers:
//
//   - hills:  fewest steps up a height map, from S and from any lowest square,
//   - risk:   lowest total risk across a digit map and across its tiled expansion,
//   - valley: fastest walk through drifting obstacles, one way and there-back-there,
//   - basins: low-point risk sum and the product of the largest basin sizes.
//
// Solvers share no state; SolveAll runs several of them in parallel.
package puzzles
