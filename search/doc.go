/*
Package search answers path queries on an assembled station graph.

Three single-pair algorithms share one result shape: DFS walks with an
explicit stack and returns some path, BFS returns a path with the fewest
edges, and Dijkstra returns the cheapest path under the graph's current
edge weights. AllPairs sweeps Dijkstra over every unordered node pair.

An unknown start or destination is not an error. Every algorithm reports
it as Result{Found: false} with infinite cost, the same outcome as a
disconnected pair.

# Basic Usage

	res := search.Dijkstra(g, "Hauptbahnhof", "Altona")
	if !res.Found {
	    fmt.Println("no connection")
	    return
	}
	fmt.Println(res.Path, res.Cost)

All algorithms visit neighbors in the graph's own deterministic iteration
order, so repeated runs on an unchanged graph return identical paths.
*/
package search
