package search

// nodeItem is a frontier entry: a node, the cost it was reached at, and its
// priority (cost plus heuristic estimate).
type nodeItem[N comparable] struct {
	node     N
	cost     int64
	priority int64
}

// nodePQ is a min-heap of *nodeItem ordered by priority. A node may appear
// several times; only its cheapest entry is expanded.
type nodePQ[N comparable] []*nodeItem[N]

func (pq nodePQ[N]) Len() int { return len(pq) }

func (pq nodePQ[N]) Less(i, j int) bool { return pq[i].priority < pq[j].priority }

func (pq nodePQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[N]) Push(x any) { *pq = append(*pq, x.(*nodeItem[N])) }

func (pq *nodePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
