package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/transit-graph/config"
	"github.com/theoremus-urban-solutions/transit-graph/search"
	"github.com/theoremus-urban-solutions/transit-graph/store"
)

func newPrecalcCmd() *cobra.Command {
	opts := &buildOpts{}
	var (
		dbPath  string
		weight  string
		workers int
		keep    int
	)

	cmd := &cobra.Command{
		Use:   "precalc",
		Short: "Precompute all shortest routes and store them in SQLite",
		Long: `precalc builds the graph, weighs it, runs all-pairs Dijkstra and writes
the graph plus every reachable pair to a snapshot in the store. serve
answers path queries from the latest snapshot without recomputing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrecalc(cmd.Context(), opts, dbPath, weight, workers, keep)
		},
	}
	opts.bindFlags(cmd)
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file (default from config)")
	cmd.Flags().StringVarP(&weight, "weight", "w", "", "cost model: geographic or travel-time (default geographic)")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size (default all CPUs)")
	cmd.Flags().IntVar(&keep, "keep", 0, "prune old snapshots down to this many (0 keeps all)")
	return cmd
}

func runPrecalc(ctx context.Context, opts *buildOpts, dbPath, weight string, workers, keep int) error {
	logger := loggerFromContext(ctx)

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

	if dbPath == "" {
		dbPath = config.Config.Store.Path
	}
	if dbPath == "" {
		return errors.New("no store: pass --db or set store.path in config.yml")
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	p := newProgress(logger)
	results, err := search.AllPairs(ctx, g, search.WithWorkers(workers))
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Computed %d reachable pairs", len(results)))

	p = newProgress(logger)
	snapshotID, err := st.SaveGraph(ctx, g)
	if err != nil {
		return err
	}
	if err := st.SavePairs(ctx, snapshotID, results); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Saved snapshot %s", snapshotID))

	if keep > 0 {
		pruned, err := st.Prune(ctx, keep)
		if err != nil {
			return err
		}
		if pruned > 0 {
			logger.Infof("Pruned %d old snapshots", pruned)
		}
	}

	summary, err := st.Summary(ctx, snapshotID)
	if err != nil {
		return err
	}

	printSuccess("Snapshot %s ready", snapshotID)
	printKeyValue("Stations", strconv.Itoa(g.NumNodes()))
	printKeyValue("Pairs", strconv.Itoa(summary.Pairs))
	printKeyValue("Minimum", formatCost(summary.MinCost, model))
	printKeyValue("Maximum", formatCost(summary.MaxCost, model))
	printKeyValue("Average", formatCost(summary.MeanCost, model))
	return nil
}
