package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/transit-graph/config"
	"github.com/theoremus-urban-solutions/transit-graph/search"
)

func newAllPairsCmd() *cobra.Command {
	opts := &buildOpts{}
	var (
		weight  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "allpairs",
		Short: "Compute shortest routes between every pair of stations",
		Long: `allpairs runs Dijkstra from every station over a worker pool and prints
cost statistics for the whole network. Unreachable pairs are left out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAllPairs(cmd.Context(), opts, weight, workers)
		},
	}
	opts.bindFlags(cmd)
	cmd.Flags().StringVarP(&weight, "weight", "w", "", "cost model: geographic or travel-time (default geographic)")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size (default all CPUs)")
	return cmd
}

func runAllPairs(ctx context.Context, opts *buildOpts, weight string, workers int) error {
	g, _, err := buildGraph(ctx, opts)
	if err != nil {
		return err
	}

	model, err := resolveWeight(weight, "geographic")
	if err != nil {
		return err
	}
	if err := g.ApplyWeights(model); err != nil {
		return err
	}
	if workers == 0 {
		workers = config.Config.Graph.Workers
	}

	logger := loggerFromContext(ctx)
	p := newProgress(logger)
	results, err := search.AllPairs(ctx, g, search.WithWorkers(workers))
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Computed %d reachable pairs", len(results)))

	if len(results) == 0 {
		printWarning("no connected station pairs")
		return nil
	}

	first := true
	var minCost, maxCost, total float64
	for _, r := range results {
		if first {
			minCost, maxCost = r.Cost, r.Cost
			first = false
		}
		if r.Cost < minCost {
			minCost = r.Cost
		}
		if r.Cost > maxCost {
			maxCost = r.Cost
		}
		total += r.Cost
	}

	printKeyValue("Pairs", strconv.Itoa(len(results)))
	printKeyValue("Minimum", formatCost(minCost, model))
	printKeyValue("Maximum", formatCost(maxCost, model))
	printKeyValue("Average", formatCost(total/float64(len(results)), model))
	return nil
}
