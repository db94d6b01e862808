package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/transit-graph/formatter"
	"github.com/theoremus-urban-solutions/transit-graph/network"
	"github.com/theoremus-urban-solutions/transit-graph/search"
)

func newShortestCmd() *cobra.Command {
	opts := &buildOpts{}
	var weight string

	cmd := &cobra.Command{
		Use:   "shortest FROM TO",
		Short: "Find the cheapest route between two stations with Dijkstra",
		Long: `shortest weighs every connection under the chosen cost model and runs
Dijkstra between two stations. The geographic model measures great
circle distance in kilometers, the travel-time model scheduled seconds
between stops.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShortest(cmd.Context(), opts, weight, args[0], args[1])
		},
	}
	opts.bindFlags(cmd)
	cmd.Flags().StringVarP(&weight, "weight", "w", "", "cost model: geographic or travel-time (default geographic)")
	return cmd
}

func runShortest(ctx context.Context, opts *buildOpts, weight, from, to string) error {
	g, tables, err := buildGraph(ctx, opts)
	if err != nil {
		return err
	}
	if err := requireNode(g, from); err != nil {
		return err
	}
	if err := requireNode(g, to); err != nil {
		return err
	}

	model, err := resolveWeight(weight, "geographic")
	if err != nil {
		return err
	}
	if err := g.ApplyWeights(model); err != nil {
		return err
	}

	r := search.Dijkstra(g, from, to)
	if !r.Found {
		printWarning("no route between %q and %q", from, to)
		return nil
	}

	printSuccess("Route found: %s over %d stations", formatCost(r.Cost, model), len(r.Path))
	fmt.Println()

	printTitle("Route")
	for i, station := range r.Path {
		suffix := ""
		switch i {
		case 0:
			suffix = " " + styleDim.Render("(start)")
		case len(r.Path) - 1:
			suffix = " " + styleDim.Render("(end)")
		}
		fmt.Printf("  %s %s%s\n", styleDim.Render(fmt.Sprintf("%2d.", i+1)), styleValue.Render(station), suffix)
	}
	fmt.Println()

	printTitle("Segments")
	printSegments(g, r.Path, model)

	if tables != nil {
		fmt.Println()
		printTitle("Lines")
		for _, leg := range formatter.RouteSegments(g, r.Path, formatter.RouteNames(tables.Routes)) {
			printDetail("%s", leg)
		}
	}
	return nil
}

func printSegments(g *network.Graph, path []string, model network.WeightModel) {
	for i := 0; i+1 < len(path); i++ {
		e, ok := g.Edge(path[i], path[i+1])
		if !ok {
			continue
		}
		printDetail("%s %s %s: %s", path[i], iconArrow, path[i+1], formatCost(e.Weight, model))
	}
}
