package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	opts := &buildOpts{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Build the station graph and print size and degree figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), opts)
		},
	}
	opts.bindFlags(cmd)
	return cmd
}

func runStats(ctx context.Context, opts *buildOpts) error {
	g, _, err := buildGraph(ctx, opts)
	if err != nil {
		return err
	}

	s := g.Stats()
	transfers := 0
	for _, n := range g.Nodes() {
		if n.Transfer {
			transfers++
		}
	}

	printKeyValue("Nodes", strconv.Itoa(s.Nodes))
	printKeyValue("Edges", strconv.Itoa(s.Edges))
	printKeyValue("Avg degree", fmt.Sprintf("%.2f", s.MeanDegree))
	printKeyValue("Degree range", fmt.Sprintf("%d to %d", s.MinDegree, s.MaxDegree))
	printKeyValue("Transfers", strconv.Itoa(transfers))
	return nil
}
