package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/transit-graph/config"
	"github.com/theoremus-urban-solutions/transit-graph/gtfs"
	"github.com/theoremus-urban-solutions/transit-graph/network"
)

// buildOpts holds the flags shared by every command that assembles a graph
// from a feed. Flag values override config.yml.
type buildOpts struct {
	gtfsPath   string
	feedName   string
	routeTypes string
	graphCache string
}

func (o *buildOpts) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.gtfsPath, "gtfs", "", "GTFS feed, a directory or a .zip archive")
	cmd.Flags().StringVar(&o.feedName, "feed", "", "named feed from the config file")
	cmd.Flags().StringVar(&o.routeTypes, "route-types", "", `comma-separated route_type filter ("all" disables the config filter)`)
	cmd.Flags().StringVar(&o.graphCache, "graph-cache", "", "snapshot file, reused when present and written after a build")
}

// resolve merges flags with the selected feed from config.
func (o *buildOpts) resolve() (path string, types []int, cache string, err error) {
	feed := config.SelectFeed(o.feedName)
	if o.feedName != "" && feed.Name != o.feedName {
		return "", nil, "", fmt.Errorf("feed %q not found in config", o.feedName)
	}

	path = o.gtfsPath
	if path == "" {
		path = feed.Path
	}
	if path == "" {
		return "", nil, "", errors.New("no GTFS feed: pass --gtfs or configure feeds in config.yml")
	}

	types = feed.RouteTypes
	if o.routeTypes != "" {
		types, err = parseRouteTypes(o.routeTypes)
		if err != nil {
			return "", nil, "", err
		}
	}

	cache = o.graphCache
	if cache == "" {
		cache = config.Config.Graph.SnapshotPath
	}
	return path, types, cache, nil
}

// parseRouteTypes parses a comma-separated route_type list. "all" and the
// empty string disable filtering.
func parseRouteTypes(s string) ([]int, error) {
	if s == "" || s == "all" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	types := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid route type %q", p)
		}
		types = append(types, v)
	}
	return types, nil
}

// buildGraph loads the feed and assembles the station graph. With a usable
// snapshot file the feed is skipped entirely and tables come back nil, so
// callers needing route metadata must handle that.
func buildGraph(ctx context.Context, opts *buildOpts) (*network.Graph, *gtfs.Tables, error) {
	logger := loggerFromContext(ctx)

	path, types, cache, err := opts.resolve()
	if err != nil {
		return nil, nil, err
	}

	if cache != "" {
		if g, err := network.DeserializeGraphFromFile(cache); err == nil {
			logger.Debugf("Reusing graph snapshot %s", cache)
			return g, nil, nil
		}
		logger.Debugf("Snapshot %s not usable, rebuilding", cache)
	}

	p := newProgress(logger)
	tables, err := gtfs.LoadTables(path)
	if err != nil {
		return nil, nil, err
	}
	p.done(fmt.Sprintf("Loaded %d stops, %d routes, %d trips, %d stop times",
		len(tables.Stops), len(tables.Routes), len(tables.Trips), len(tables.StopTimes)))

	p = newProgress(logger)
	g := network.Assemble(tables, network.AssembleOptions{RouteTypes: types})
	p.done(fmt.Sprintf("Assembled %d stations, %d connections", g.NumNodes(), g.NumEdges()))

	if cache != "" {
		if err := network.SerializeGraphToFile(g, cache); err != nil {
			logger.Warnf("Graph snapshot not written: %v", err)
		} else {
			logger.Debugf("Wrote graph snapshot %s", cache)
		}
	}
	return g, tables, nil
}

// resolveWeight picks the cost model: flag first, then config, then the
// command's fallback. Empty means no weighting.
func resolveWeight(flag, fallback string) (network.WeightModel, error) {
	v := flag
	if v == "" {
		v = config.Config.Graph.Weight
	}
	if v == "" {
		v = fallback
	}
	if v == "" {
		return network.WeightNone, nil
	}
	return network.ParseWeightModel(v)
}

// requireNode fails with the station name when it is not in the graph.
func requireNode(g *network.Graph, id string) error {
	if _, ok := g.Node(id); !ok {
		return fmt.Errorf("station %q not in graph", id)
	}
	return nil
}
