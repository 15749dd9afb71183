// Package board adapts 2D grids of scalar values into read-only boards that
// shortest-path searches can query.
//
// What:
//
//   - Cell is an immutable (row, col) coordinate, usable as a map key.
//   - Board[T] is the query contract: logical extent, Contains, ValueAt.
//   - Grid[T] is a finite, rectangular board deep-copied from [][]T.
//   - Tiled[T] repeats a Grid a fixed number of times in each direction and
//     derives each copy's values through a TileTransform (for example the
//     1..9 cyclic rule returned by CyclicWrap).
//   - Torus[T] wraps coordinates modulo the stored extent with no value change.
//   - Timeline[T] is a periodic cycle of Grid snapshots indexed by a time phase;
//     NewDrift builds one from a walled field of drifting obstacles.
//
// Boards never mutate after construction, so a single Board may be shared by
// any number of concurrent searches.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfRange: a queried cell lies outside the logical extent (returned as *OutOfRangeError).
//   - ErrBadRepeat: tile repetition counts must be positive.
//   - ErrNotPeriodic: a drift field failed to return to its initial state after one period.
package board
