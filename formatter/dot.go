package formatter

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/transit-graph/network"
)

// Node colors from the HVV map style: regular stops small and blue,
// transfer stations larger and orange.
const (
	stopColor     = "#1f78b4"
	transferColor = "#ff7f00"
)

// DOTOptions configures DOT emission.
type DOTOptions struct {
	// Geo pins every node at its mean stop coordinates. The output is
	// meant for neato, which honors pinned positions.
	Geo bool

	// Path is a node sequence to highlight. When set, edges along the
	// path are drawn red and everything else fades to light grey, with
	// the first and last node marked as stars.
	Path []string

	// RouteColors maps route IDs to stroke colors. Parallel routes on
	// one edge are joined into a Graphviz color list.
	RouteColors map[string]string

	// RouteNames maps route IDs to display names for edge labels. Nil
	// leaves edges unlabeled.
	RouteNames map[string]string
}

// GraphDOT converts a station graph to Graphviz DOT. Nodes are emitted
// sorted by ID and edges sorted by endpoint pair, so the output is stable
// across runs. The text renders with dot, or with neato when positions
// are pinned via [DOTOptions.Geo].
func GraphDOT(g *network.Graph, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("graph transit {\n")
	if opts.Geo {
		buf.WriteString("  layout=neato;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=point, width=0.08, color=%q];\n", stopColor)
	buf.WriteString("  edge [penwidth=1.2, fontsize=8];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := nodeAttrs(n, opts)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q;\n", n.ID)
			continue
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	onPath := pathEdges(opts.Path)

	buf.WriteString("\n")
	for _, e := range sortedEdges(g) {
		attrs := edgeAttrs(e, opts, onPath)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -- %q;\n", e.U, e.V)
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.U, e.V, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n *network.Node, opts DOTOptions) []string {
	var attrs []string
	marked := false
	if len(opts.Path) > 0 {
		switch n.ID {
		case opts.Path[0]:
			attrs = append(attrs, "shape=star", "width=0.25", "color=green")
			marked = true
		case opts.Path[len(opts.Path)-1]:
			attrs = append(attrs, "shape=star", "width=0.25", "color=red")
			marked = true
		}
	}
	if !marked && n.Transfer {
		attrs = append(attrs, "width=0.16", fmt.Sprintf("color=%q", transferColor))
	}
	if marked || n.Transfer {
		attrs = append(attrs, fmt.Sprintf("xlabel=%q", n.ID))
	}
	if opts.Geo {
		attrs = append(attrs, fmt.Sprintf("pos=\"%.6f,%.6f!\"", n.Lon, n.Lat))
	}
	return attrs
}

func edgeAttrs(e *network.Edge, opts DOTOptions, onPath map[[2]string]bool) []string {
	var attrs []string
	if label := edgeLabel(e, opts.RouteNames); label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", label))
	}
	if len(opts.Path) > 0 {
		if onPath[pairKey(e.U, e.V)] {
			attrs = append(attrs, "color=red", "penwidth=3")
		} else {
			attrs = append(attrs, "color=lightgray", "penwidth=0.5")
		}
		return attrs
	}
	if stroke := edgeStroke(e, opts.RouteColors); stroke != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", stroke))
	}
	return attrs
}

// pathEdges collects the normalized endpoint pairs along a path.
func pathEdges(path []string) map[[2]string]bool {
	if len(path) < 2 {
		return nil
	}
	marks := make(map[[2]string]bool, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		marks[pairKey(path[i], path[i+1])] = true
	}
	return marks
}

func edgeLabel(e *network.Edge, names map[string]string) string {
	if names == nil {
		return ""
	}
	out := make([]string, 0, len(e.Routes))
	for _, rid := range e.Routes {
		name, ok := names[rid]
		if !ok || name == "" {
			name = rid
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}

func edgeStroke(e *network.Edge, colors map[string]string) string {
	if colors == nil {
		return ""
	}
	parts := make([]string, 0, len(e.Routes))
	for _, rid := range e.RouteIDs() {
		c, ok := colors[rid]
		if !ok {
			c = defaultRouteColor
		}
		parts = append(parts, c)
	}
	return strings.Join(parts, ":")
}
