package formatter

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/transit-graph/gtfs"
	"github.com/theoremus-urban-solutions/transit-graph/network"
)

const defaultRouteColor = "#999999"

// RouteColors maps route IDs to display colors. GTFS carries route_color
// as hex without the leading '#'; blank or malformed values fall back to
// a neutral grey.
func RouteColors(routes []gtfs.Route) map[string]string {
	out := make(map[string]string, len(routes))
	for _, r := range routes {
		out[r.ID] = normalizeColor(r.Color)
	}
	return out
}

func normalizeColor(col string) string {
	col = strings.TrimSpace(col)
	if len(col) != 3 && len(col) != 6 {
		return defaultRouteColor
	}
	for _, c := range col {
		if !isHexDigit(c) {
			return defaultRouteColor
		}
	}
	return "#" + col
}

func isHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// RouteNames maps route IDs to their short names, falling back to the ID
// when a route has none.
func RouteNames(routes []gtfs.Route) map[string]string {
	out := make(map[string]string, len(routes))
	for _, r := range routes {
		if r.ShortName != "" {
			out[r.ID] = r.ShortName
		} else {
			out[r.ID] = r.ID
		}
	}
	return out
}

// RouteSegments renders a path as "station - lines - station" legs. A new
// leg starts wherever the set of serving routes changes, which marks a
// transfer. Legs crossing a missing edge are closed at the gap. Paths
// shorter than two stations produce no legs.
func RouteSegments(g *network.Graph, path []string, names map[string]string) []string {
	if len(path) < 2 {
		return nil
	}

	var segments []string
	var current []string
	currentLabel := ""
	segStart := path[0]

	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		e, ok := g.Edge(u, v)
		if !ok {
			if current != nil {
				segments = append(segments, fmt.Sprintf("%s - %s - %s", segStart, currentLabel, u))
			}
			segStart = v
			current = nil
			continue
		}
		ids := e.RouteIDs()
		switch {
		case current == nil:
			current = ids
			currentLabel = legLabel(ids, names)
		case !slices.Equal(ids, current):
			segments = append(segments, fmt.Sprintf("%s - %s - %s", segStart, currentLabel, u))
			segStart = u
			current = ids
			currentLabel = legLabel(ids, names)
		}
	}

	if current != nil {
		segments = append(segments, fmt.Sprintf("%s - %s - %s", segStart, currentLabel, path[len(path)-1]))
	} else if len(segments) == 0 {
		segments = append(segments, fmt.Sprintf("%s - %s", path[0], path[len(path)-1]))
	}
	return segments
}

func legLabel(ids []string, names map[string]string) string {
	out := make([]string, 0, len(ids))
	for _, rid := range ids {
		name := rid
		if names != nil {
			if n, ok := names[rid]; ok && n != "" {
				name = n
			}
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}
