package search

import (
	"container/heap"

	"github.com/theoremus-urban-solutions/transit-graph/network"
)

// Dijkstra finds the cheapest path from start to end under the graph's
// current edge weights. On an unweighted graph every edge costs 1, making
// the result a hop count.
//
// The priority queue orders entries by (distance, node ID); the ID is only
// a tie-break so that equal-cost alternatives resolve the same way on
// every run. Instead of a decrease-key operation the queue holds duplicate
// entries and skips stale ones when popped. The search stops as soon as
// the destination is popped, which is safe because weights are
// non-negative: results are undefined if negative weights are introduced.
func Dijkstra(g *network.Graph, start, end string) Result {
	if g == nil || !g.HasNode(start) || !g.HasNode(end) {
		return noPath()
	}

	dist := map[string]float64{start: 0}
	parent := map[string]string{}
	done := map[string]struct{}{}

	pq := nodePQ{{id: start, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		if _, ok := done[item.id]; ok {
			continue
		}
		done[item.id] = struct{}{}

		if item.id == end {
			path := buildPath(parent, end)
			return Result{Path: path, Cost: item.dist, Found: true}
		}

		for _, e := range g.Neighbors(item.id) {
			next := e.Other(item.id)
			w := e.Weight
			if !g.Weighted() {
				w = 1
			}
			nd := item.dist + w
			if best, seen := dist[next]; seen && nd >= best {
				continue
			}
			dist[next] = nd
			parent[next] = item.id
			heap.Push(&pq, &nodeItem{id: next, dist: nd})
		}
	}
	return noPath()
}

type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id). Stale duplicates
// from the lazy decrease-key strategy stay in the heap and are filtered by
// the caller.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
