// Package moves generates the admissible neighbors of a cell on a board.
//
// A Generator combines three things:
//
//   - a delta set: Conn4 (N, E, S, W), Conn8 (adds diagonals) or any custom set,
//   - an optional wait move that keeps the cell in place for one step,
//   - a Predicate that decides, from both cells and their values, whether a
//     move is allowed (for example ClimbAtMost(1) for height maps).
//
// TimedGenerator does the same over a board.Timeline: every move advances the
// phase by one and the predicate sees the target's value at arrival time.
//
// Neighbor order follows the delta order but callers must not depend on it.
package moves
