// Package cli implements the transit-graph command line interface.
//
// Commands build a station graph from a GTFS feed and query it: stats for
// size and degree figures, path for a DFS/BFS comparison, shortest for
// weighted routes, allpairs for network-wide cost statistics, render and
// export for visual and machine-readable dumps, precalc and snapshots
// for the SQLite result store and serve for the HTTP API.
//
// All commands read config.yml when present; flags override it. Loggers
// travel through context.Context and report progress on stderr.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/transit-graph/config"
)

// Build metadata, set via ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion records build metadata shown by --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// Execute sets up the root command and runs the CLI.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "transit-graph",
		Short: "Build and query a public transit network graph",
		Long: `transit-graph turns a GTFS timetable into a station graph and answers
questions about it: connectivity, shortest routes under geographic or
travel-time weighting, network-wide statistics and renderings.

Feeds come from config.yml or the --gtfs flag. Stations are named nodes;
parallel platforms of one station collapse into a single node.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))

			if configPath != "" {
				return config.LoadAppConfigFrom(configPath)
			}
			// A missing default config is fine, flags can carry everything.
			if err := config.LoadAppConfig(); err != nil && !os.IsNotExist(err) {
				return err
			}
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("transit-graph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default config.yml)")

	root.AddCommand(newStatsCmd())
	root.AddCommand(newPathCmd())
	root.AddCommand(newShortestCmd())
	root.AddCommand(newAllPairsCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newPrecalcCmd())
	root.AddCommand(newSnapshotsCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(context.Background())
}
