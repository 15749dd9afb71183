// Package extract turns engine output into puzzle answers.
//
// Every function is pure and only reads a *search.Result, a reconstructed
// path or a board:
//
//   - GoalCost:       cost of the goal reached by a Shortest run,
//   - PathValueSum:   sum of cell values along a path, source excluded,
//   - Steps:          number of moves in a path,
//   - ReachableCount: number of closed nodes,
//   - Farthest:       largest optimal cost in a shortest-path tree,
//   - LargestProduct: product of the k largest sizes (basin-style answers).
package extract
