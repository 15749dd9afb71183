// Package search implements one best-first shortest-path engine over
// implicit graphs, covering BFS, Dijkstra and A* under a single contract.
//
// The graph is never materialized. A Problem supplies:
//
//   - Sources:   one or more start nodes, all at cost 0,
//   - Neighbors: the admissible moves from a node (see package moves),
//   - Cost:      a non-negative edge cost (see package cost; nil means 1 per move),
//   - Heuristic: an admissible, consistent estimate of remaining cost (nil means 0),
//   - Goal:      the predicate that ends a Shortest run.
//
// Shortest stops at the first closed node satisfying Goal. Explore runs the
// same loop to exhaustion and returns the whole shortest-path tree.
//
// Per node the state moves unseen → frontier → closed. A cheaper tentative
// cost re-inserts the node (lazy decrease-key); stale heap entries are skipped
// when popped because their node is already closed.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for V reached nodes and E relaxed edges.
//   - Space: O(V + E); the heap may hold one entry per successful relaxation.
//
// Ties between equal priorities are popped in unspecified order, so only the
// returned cost is deterministic; a reconstructed path is one of possibly
// several optimal paths.
//
// Errors:
//
//   - ErrNoPath:           no source reaches a goal node (an expected outcome).
//   - cost.ErrInvalidCost: a negative edge cost was produced.
//   - board.ErrOutOfRange: surfaced from Neighbors or Cost when a node is off the board.
//   - ErrNoSources, ErrNilNeighbors, ErrNilGoal: malformed Problem.
//   - ErrPathNotRecorded:  PathTo on a Result built without WithReturnPath.
//
// Each call owns its state; concurrent calls over one shared, read-only board
// are safe.
package search
