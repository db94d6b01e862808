package search

import "math"

// Result is the outcome of a single-pair search. For DFS and BFS, Cost is
// the number of edges on the path; for Dijkstra it is the sum of edge
// weights. A pair with no connection, including unknown endpoints, comes
// back as Found=false with an empty path and infinite cost.
type Result struct {
	Path  []string
	Cost  float64
	Found bool
}

// Edges returns the number of edges on the path, 0 when no path was found.
func (r Result) Edges() int {
	if !r.Found || len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

func noPath() Result {
	return Result{Cost: math.Inf(1)}
}

// buildPath walks the predecessor chain from end back to the search start
// and returns it in forward order. The start node has no predecessor
// entry, which terminates the walk.
func buildPath(parent map[string]string, end string) []string {
	var rev []string
	node := end
	for {
		rev = append(rev, node)
		p, ok := parent[node]
		if !ok {
			break
		}
		node = p
	}
	path := make([]string, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}
	return path
}
