package search

import (
	"container/heap"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/cost"
)

// Shortest returns the minimum cost from any source to the first node that
// satisfies p.Goal. When no goal node is reachable it returns ErrNoPath and
// a nil Result.
//
// Preconditions (checked in order):
//  1. p.Goal is non-nil (ErrNilGoal).
//  2. p.Sources is non-empty (ErrNoSources).
//  3. p.Neighbors is non-nil (ErrNilNeighbors).
//
// A source that satisfies Goal yields cost 0 and a single-node path.
func Shortest[N comparable](p Problem[N], opts ...Option) (*Result[N], error) {
	if p.Goal == nil {
		return nil, ErrNilGoal
	}
	r, err := newRunner(p, opts)
	if err != nil {
		return nil, err
	}
	if err := r.process(p.Goal); err != nil {
		return nil, err
	}
	if !r.res.Found {
		return nil, ErrNoPath
	}
	return r.res, nil
}

// Explore runs the search to exhaustion (or to MaxDistance) and returns the
// optimal cost of every reached node. p.Goal is ignored.
func Explore[N comparable](p Problem[N], opts ...Option) (*Result[N], error) {
	r, err := newRunner(p, opts)
	if err != nil {
		return nil, err
	}
	if err := r.process(nil); err != nil {
		return nil, err
	}
	return r.res, nil
}

// runner holds the mutable state of a single engine run.
type runner[N comparable] struct {
	p    Problem[N]
	opts Options
	dist map[N]int64 // best known cost per node
	pq   nodePQ[N]
	res  *Result[N]
}

// newRunner validates p, applies options and seeds the frontier with every
// distinct source at cost 0.
func newRunner[N comparable](p Problem[N], opts []Option) (*runner[N], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(p.Sources) == 0 {
		return nil, ErrNoSources
	}
	if p.Neighbors == nil {
		return nil, ErrNilNeighbors
	}
	if p.Cost == nil {
		p.Cost = cost.Unit[N]()
	}
	if p.Heuristic == nil {
		p.Heuristic = Zero[N]()
	}

	r := &runner[N]{
		p:    p,
		opts: cfg,
		dist: make(map[N]int64),
		pq:   make(nodePQ[N], 0, len(p.Sources)),
		res: &Result[N]{
			closed: make(map[N]struct{}),
		},
	}
	if cfg.ReturnPath {
		r.res.prev = make(map[N]N)
	}
	heap.Init(&r.pq)
	for _, s := range p.Sources {
		if _, dup := r.dist[s]; dup {
			continue
		}
		r.dist[s] = 0
		r.res.Sources = append(r.res.Sources, s)
		heap.Push(&r.pq, &nodeItem[N]{node: s, cost: 0, priority: p.Heuristic(s)})
	}
	r.res.dist = r.dist
	return r, nil
}

// process pops the frontier until it empties, the distance cap is passed, or a
// closed node satisfies goal (when goal is non-nil).
//
// Complexity: O((V + E) log V) for V closed nodes and E relaxed edges.
func (r *runner[N]) process(goal func(N) bool) error {
	for r.pq.Len() > 0 {
		// 1) Pop the lowest priority (cost + estimate).
		item := heap.Pop(&r.pq).(*nodeItem[N])
		r.res.Pops++

		// 2) Stale entry: the node was finalized by an earlier, cheaper pop.
		if _, done := r.res.closed[item.node]; done {
			continue
		}
		// 3) Everything left costs more than the cap.
		if item.cost > r.opts.MaxDistance {
			break
		}
		// 4) Close: the cost is final.
		r.res.closed[item.node] = struct{}{}

		// 5) Goal test on close, never on push.
		if goal != nil && goal(item.node) {
			r.res.Found = true
			r.res.Goal = item.node
			r.res.Cost = item.cost
			break
		}
		// 6) Expand.
		if err := r.relax(item.node, item.cost); err != nil {
			return err
		}
	}

	r.opts.Logger.Debug("search finished",
		zap.Int("sources", len(r.res.Sources)),
		zap.Int("pops", r.res.Pops),
		zap.Int("closed", len(r.res.closed)),
		zap.Bool("found", r.res.Found),
		zap.Int64("cost", r.res.Cost))
	return nil
}

// relax tries to improve every neighbor of the closed node u reached at cost d.
// Every edge is priced and validated, including edges into closed nodes.
func (r *runner[N]) relax(u N, d int64) error {
	// 1) Generate candidate moves.
	neighbors, err := r.p.Neighbors(u)
	if err != nil {
		return fmt.Errorf("search: neighbors of %v: %w", u, err)
	}
	for _, v := range neighbors {
		// 2) Price and validate the edge.
		w, err := r.p.Cost(u, v)
		if err != nil {
			return fmt.Errorf("search: cost of %v→%v: %w", u, v, err)
		}
		if err := cost.Validate(u, v, w); err != nil {
			return err
		}
		// 3) Closed nodes keep their final cost.
		if _, done := r.res.closed[v]; done {
			continue
		}

		// 4) Respect the distance cap.
		nd := d + w
		if nd > r.opts.MaxDistance {
			continue
		}
		// 5) Strictly better only; equal costs do not push duplicates.
		if best, seen := r.dist[v]; seen && nd >= best {
			continue
		}
		// 6) Record and push (lazy decrease-key).
		r.dist[v] = nd
		if r.res.prev != nil {
			r.res.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem[N]{node: v, cost: nd, priority: nd + r.p.Heuristic(v)})
	}
	return nil
}
