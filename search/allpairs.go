package search

import (
	"context"
	"runtime"
	"sync"

	"github.com/theoremus-urban-solutions/transit-graph/network"
)

// Pair is an unordered node pair with A < B.
type Pair struct {
	A, B string
}

// AllPairsOption customizes an AllPairs sweep.
type AllPairsOption func(*allPairsConfig)

type allPairsConfig struct {
	workers int
}

// WithWorkers bounds the worker pool for the sweep. Values below 1 fall
// back to the default of runtime.NumCPU().
func WithWorkers(n int) AllPairsOption {
	return func(c *allPairsConfig) {
		c.workers = n
	}
}

type pairEntry struct {
	pair Pair
	res  Result
}

// AllPairs runs Dijkstra for every unordered pair of distinct nodes, taking
// nodes in sorted order and pairing each with the ones after it, and
// returns the pairs a path exists for. Sources are distributed over a
// bounded worker pool; each worker reads the shared graph and writes only
// its own sources' rows, so no locking is needed. The graph must not be
// mutated, including reweighting, while the sweep runs.
//
// Cancelling the context stops the sweep between per-source runs. The
// pairs completed so far are returned together with the context error.
func AllPairs(ctx context.Context, g *network.Graph, opts ...AllPairsOption) (map[Pair]Result, error) {
	cfg := allPairsConfig{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.NumCPU()
	}

	if g == nil {
		return map[Pair]Result{}, nil
	}
	nodes := g.NodeIDs()
	rows := make([][]pairEntry, len(nodes))

	jobs := make(chan int)
	go func() {
		defer close(jobs)
		for i := range nodes {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < cfg.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				var row []pairEntry
				for j := i + 1; j < len(nodes); j++ {
					if res := Dijkstra(g, nodes[i], nodes[j]); res.Found {
						row = append(row, pairEntry{Pair{nodes[i], nodes[j]}, res})
					}
				}
				rows[i] = row
			}
		}()
	}
	wg.Wait()

	out := make(map[Pair]Result)
	for _, row := range rows {
		for _, e := range row {
			out[e.pair] = e.res
		}
	}
	return out, ctx.Err()
}
