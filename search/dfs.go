package search

import (
	"github.com/theoremus-urban-solutions/transit-graph/network"
)

// DFS finds a path from start to end by depth-first traversal with an
// explicit stack. The path is valid but not necessarily minimal in edge
// count; neighbors are explored in the graph's iteration order, so the
// result is deterministic for a given graph. Edge weights are ignored.
func DFS(g *network.Graph, start, end string) Result {
	if g == nil || !g.HasNode(start) || !g.HasNode(end) {
		return noPath()
	}

	stack := []string{start}
	visited := map[string]struct{}{start: {}}
	parent := map[string]string{}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

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
			stack = append(stack, next)
		}
	}
	return noPath()
}
