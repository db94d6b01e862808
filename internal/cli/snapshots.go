package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/transit-graph/config"
	"github.com/theoremus-urban-solutions/transit-graph/network"
	"github.com/theoremus-urban-solutions/transit-graph/store"
)

func newSnapshotsCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List precalc snapshots in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshots(cmd.Context(), dbPath)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file (default from config)")
	return cmd
}

func runSnapshots(ctx context.Context, dbPath string) error {
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

	infos, err := st.Snapshots(ctx)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		printWarning("store has no snapshots, run precalc first")
		return nil
	}

	for i, info := range infos {
		if i > 0 {
			fmt.Println()
		}
		printTitle("%s", info.ID)
		printKeyValue("Built", info.BuiltAt.Format("2006-01-02 15:04:05 MST"))
		printKeyValue("Weighting", weightingLabel(info.Weighting))
		printKeyValue("Size", fmt.Sprintf("%d stations, %d connections", info.Nodes, info.Edges))
	}
	return nil
}

func weightingLabel(m network.WeightModel) string {
	if m == network.WeightNone {
		return "none"
	}
	return string(m)
}
