package search

import (
	"github.com/theoremus-urban-solutions/transit-graph/network"
)

// BFS finds a path from start to end with the minimum number of edges.
// Ties between equally short paths fall to queue insertion order, which
// follows the graph's neighbor iteration order, so repeated runs return
// the identical path. Edge weights are ignored.
func BFS(g *network.Graph, start, end string) Result {
	if g == nil || !g.HasNode(start) || !g.HasNode(end) {
		return noPath()
	}

	queue := []string{start}
	visited := map[string]struct{}{start: {}}
	parent := map[string]string{}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == end {
			path := buildPath(parent, end)
			return Result{Path: path, Cost: float64(len(path) - 1), Found: true}
		}

		for _, e := range g.Neighbors(current) {
			next := e.Other(current)
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			parent[next] = current
			queue = append(queue, next)
		}
	}
	return noPath()
}
