package polysplit

import "container/heap"

// searchItem is one entry in the priority queue: a candidate cumulative
// distance to vertex index. Ties are broken by ascending index so results
// never depend on heap internals (spec.md §5 Determinism).
type searchItem struct {
	dist  float64
	index int
}

// searchHeap is a min-heap of searchItem ordered by dist ascending, then
// index ascending. We use the same "lazy decrease-key" pattern as
// dijkstra.nodePQ: relaxation pushes a fresh entry rather than mutating an
// existing one, and stale entries are skipped on pop.
type searchHeap []searchItem

func (h searchHeap) Len() int { return len(h) }

func (h searchHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].index < h[j].index
}

func (h searchHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *searchHeap) Push(x any) { *h = append(*h, x.(searchItem)) }

func (h *searchHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// shortestPath runs the monotone-constrained Dijkstra described in
// spec.md §4.4 over the layered DAG (vertices, layers), and returns the
// chosen vertex index for each layer, in layer order.
func shortestPath(vertices []vertex, layers []layerRange) ([]int, error) {
	n := len(vertices)
	dist := make([]float64, n)
	haveDist := make([]bool, n)
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}

	pq := make(searchHeap, 0, layers[0].end-layers[0].start)
	heap.Init(&pq)
	for idx := layers[0].start; idx < layers[0].end; idx++ {
		dist[idx] = vertices[idx].distanceToRef
		haveDist[idx] = true
		heap.Push(&pq, searchItem{dist: dist[idx], index: idx})
	}

	lastLayer := len(layers) - 1
	destination := -1

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(searchItem)
		v := item.index

		// Stale entry: a cheaper path to v was already relaxed in.
		if item.dist > dist[v] {
			continue
		}

		cur := vertices[v]
		if cur.layer == lastLayer {
			destination = v

			break
		}

		next := layers[cur.layer+1]
		for w := next.start; w < next.end; w++ {
			cand := vertices[w]

			// Monotonicity filter: never select a cut point that falls
			// behind the one already chosen at this layer.
			if cand.cutPointIndex < cur.cutPointIndex {
				continue
			}

			relaxed := dist[v] + cand.distanceToRef
			if !haveDist[w] || relaxed < dist[w] {
				dist[w] = relaxed
				haveDist[w] = true
				prev[w] = v
				heap.Push(&pq, searchItem{dist: relaxed, index: w})
			}
		}
	}

	if destination < 0 {
		return nil, newError(CannotSplit, ErrCannotSplit, -1)
	}

	path := make([]int, 0, len(layers))
	for cur := destination; cur >= 0; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
