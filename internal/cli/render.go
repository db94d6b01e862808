package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/transit-graph/formatter"
	"github.com/theoremus-urban-solutions/transit-graph/search"
)

func newRenderCmd() *cobra.Command {
	opts := &buildOpts{}
	var (
		output  string
		format  string
		geo     bool
		overlay string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the network as SVG, PNG or DOT",
		Long: `render lays the station graph out with Graphviz. With --geo every node
is pinned at its mean stop coordinates, giving a geographic map rather
than a spring layout. --path FROM,TO highlights a fewest-stations route.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), opts, output, format, geo, overlay)
		},
	}
	opts.bindFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default network.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png or dot")
	cmd.Flags().BoolVar(&geo, "geo", false, "pin nodes at their geographic positions")
	cmd.Flags().StringVar(&overlay, "path", "", "highlight a route, given as FROM,TO")
	return cmd
}

func runRender(ctx context.Context, opts *buildOpts, output, format string, geo bool, overlay string) error {
	g, tables, err := buildGraph(ctx, opts)
	if err != nil {
		return err
	}

	dotOpts := formatter.DOTOptions{Geo: geo}
	if tables != nil {
		dotOpts.RouteColors = formatter.RouteColors(tables.Routes)
		dotOpts.RouteNames = formatter.RouteNames(tables.Routes)
	}

	if overlay != "" {
		from, to, err := splitPair(overlay)
		if err != nil {
			return err
		}
		if err := requireNode(g, from); err != nil {
			return err
		}
		if err := requireNode(g, to); err != nil {
			return err
		}
		r := search.BFS(g, from, to)
		if !r.Found {
			return fmt.Errorf("no route between %q and %q to highlight", from, to)
		}
		dotOpts.Path = r.Path
	}

	dot := formatter.GraphDOT(g, dotOpts)

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = formatter.RenderSVG(ctx, dot)
	case "png":
		data, err = formatter.RenderPNG(ctx, dot)
	default:
		return fmt.Errorf("unknown format %q, want svg, png or dot", format)
	}
	if err != nil {
		return err
	}

	if output == "" {
		output = "network." + format
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}

	printSuccess("Rendered %d stations, %d connections", g.NumNodes(), g.NumEdges())
	printFile(output)
	return nil
}

// splitPair splits a "FROM,TO" flag value.
func splitPair(s string) (string, string, error) {
	from, to, ok := strings.Cut(s, ",")
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if !ok || from == "" || to == "" {
		return "", "", fmt.Errorf("invalid pair %q, want FROM,TO", s)
	}
	return from, to, nil
}
