package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/transit-graph/config"
	"github.com/theoremus-urban-solutions/transit-graph/network"
	"github.com/theoremus-urban-solutions/transit-graph/server"
	"github.com/theoremus-urban-solutions/transit-graph/store"
)

func newServeCmd() *cobra.Command {
	opts := &buildOpts{}
	var (
		port     int
		dbPath   string
		snapshot string
		weight   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the graph over HTTP",
		Long: `serve exposes the station graph as a JSON API: health, stats, node
listings, nearest-node lookup and path search. With --db it serves the
latest precalc snapshot and answers Dijkstra queries from the store;
otherwise it builds the graph from the feed and searches live.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, port, dbPath, snapshot, weight)
		},
	}
	opts.bindFlags(cmd)
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default from config, then 8080)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite store with precalc snapshots")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "snapshot ID to serve (default latest)")
	cmd.Flags().StringVarP(&weight, "weight", "w", "", "cost model when building live (default none)")
	return cmd
}

func runServe(ctx context.Context, opts *buildOpts, port int, dbPath, snapshot, weight string) error {
	logger := loggerFromContext(ctx)

	var (
		g          *network.Graph
		st         *store.Store
		snapshotID string
		err        error
	)

	if dbPath == "" && !opts.changed() {
		dbPath = config.Config.Store.Path
	}

	if dbPath != "" {
		st, err = store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		snapshotID = snapshot
		if snapshotID == "" || snapshotID == "latest" {
			info, err := st.LatestSnapshot(ctx)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return errors.New("store has no snapshots, run precalc first")
				}
				return err
			}
			snapshotID = info.ID
		}
		g, err = st.LoadGraph(ctx, snapshotID)
		if err != nil {
			return err
		}
		logger.Infof("Serving snapshot %s, %d stations under %q weighting", snapshotID, g.NumNodes(), g.Weighting())
	} else {
		g, _, err = buildGraph(ctx, opts)
		if err != nil {
			return err
		}
		model, err := resolveWeight(weight, "")
		if err != nil {
			return err
		}
		if model != network.WeightNone {
			if err := g.ApplyWeights(model); err != nil {
				return err
			}
		}
	}

	if port == 0 {
		port = config.Config.Server.Port
	}

	server.InitLogging()
	srv := server.New(server.Options{
		Graph:         g,
		Store:         st,
		SnapshotID:    snapshotID,
		Port:          port,
		CacheSize:     config.Config.Server.CacheSize,
		CacheTTL:      time.Duration(config.Config.Server.CacheTTLSec) * time.Second,
		ShutdownGrace: time.Duration(config.Config.Server.ShutdownGrace) * time.Second,
	})
	srv.Start()
	srv.HandleGracefulShutdown()
	return nil
}

// changed reports whether any build flag was given explicitly, which makes
// serve build from the feed even when the config names a store.
func (o *buildOpts) changed() bool {
	return o.gtfsPath != "" || o.feedName != "" || o.routeTypes != "" || o.graphCache != ""
}
