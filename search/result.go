package search

import (
	"golang.org/x/exp/maps"
)

// Result is the outcome of one engine run.
//
// Sources lists the distinct sources in the order given. For a Shortest run
// Found is true and Goal/Cost describe the first goal node closed. Pops counts
// every frontier pop, stale entries included.
type Result[N comparable] struct {
	Sources []N
	Found   bool
	Goal    N
	Cost    int64
	Pops    int

	dist   map[N]int64
	prev   map[N]N
	closed map[N]struct{}
}

// Reached reports whether n was closed, i.e. its cost is final.
func (r *Result[N]) Reached(n N) bool {
	_, ok := r.closed[n]
	return ok
}

// CostTo returns the optimal cost of n if n was closed.
func (r *Result[N]) CostTo(n N) (int64, bool) {
	if !r.Reached(n) {
		return 0, false
	}
	return r.dist[n], true
}

// Len returns the number of closed nodes.
func (r *Result[N]) Len() int { return len(r.closed) }

// Closed returns the closed nodes in unspecified order.
func (r *Result[N]) Closed() []N {
	return maps.Keys(r.closed)
}

// Distances returns a copy of the final cost of every closed node.
func (r *Result[N]) Distances() map[N]int64 {
	out := make(map[N]int64, len(r.closed))
	for n := range r.closed {
		out[n] = r.dist[n]
	}
	return out
}

// Path returns a path from a source to the goal of a Shortest run.
func (r *Result[N]) Path() ([]N, error) {
	if !r.Found {
		return nil, ErrNoPath
	}
	return r.PathTo(r.Goal)
}

// PathTo returns a path from a source to n. The path starts with a source,
// ends with n and has at least one element.
// Returns ErrNoPath if n was never closed and ErrPathNotRecorded if the run
// did not keep predecessors.
func (r *Result[N]) PathTo(n N) ([]N, error) {
	if !r.Reached(n) {
		return nil, ErrNoPath
	}
	if r.prev == nil {
		return nil, ErrPathNotRecorded
	}
	return Reconstruct(r.prev, n), nil
}

// Reconstruct walks prev back from target until a node without predecessor
// and returns the walk reversed, so it starts at that node and ends at target.
func Reconstruct[N comparable](prev map[N]N, target N) []N {
	path := []N{target}
	for cur := target; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
