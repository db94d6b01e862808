package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/transit-graph/formatter"
	"github.com/theoremus-urban-solutions/transit-graph/network"
)

func newExportCmd() *cobra.Command {
	opts := &buildOpts{}
	var (
		output string
		format string
		weight string
		geo    bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the graph as JSON, GeoJSON or DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), opts, output, format, weight, geo)
		},
	}
	opts.bindFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, geojson or dot")
	cmd.Flags().StringVarP(&weight, "weight", "w", "", "cost model to apply before the dump (default none)")
	cmd.Flags().BoolVar(&geo, "geo", false, "pin DOT nodes at their geographic positions")
	return cmd
}

func runExport(ctx context.Context, opts *buildOpts, output, format, weight string, geo bool) error {
	g, tables, err := buildGraph(ctx, opts)
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

	var data []byte
	switch format {
	case "json":
		data, err = formatter.GraphJSON(g)
	case "geojson":
		data, err = formatter.GraphGeoJSON(g)
	case "dot":
		dotOpts := formatter.DOTOptions{Geo: geo}
		if tables != nil {
			dotOpts.RouteColors = formatter.RouteColors(tables.Routes)
			dotOpts.RouteNames = formatter.RouteNames(tables.Routes)
		}
		data = []byte(formatter.GraphDOT(g, dotOpts))
	default:
		return fmt.Errorf("unknown format %q, want json, geojson or dot", format)
	}
	if err != nil {
		return err
	}

	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	printFile(output)
	return nil
}
