package network

import (
	"sort"

	"github.com/theoremus-urban-solutions/transit-graph/gtfs"
)

// AssembleOptions controls graph assembly.
type AssembleOptions struct {
	// RouteTypes keeps only routes whose route_type is in the set.
	// Empty means no filter: every route participates.
	RouteTypes []int
}

func (o AssembleOptions) keeps(routeType int) bool {
	if len(o.RouteTypes) == 0 {
		return true
	}
	for _, t := range o.RouteTypes {
		if t == routeType {
			return true
		}
	}
	return false
}

// Assemble builds the station graph from loaded tables.
//
// Routes are filtered by opts.RouteTypes, trips to the surviving routes,
// and stop times to the surviving trips. Stops referenced by a surviving
// stop time are clustered into nodes; every such node enters the graph
// even if it never gains an edge. Each trip then contributes one directed
// traversal per consecutive node pair, in stop_sequence order, with the
// travel time arrival(v) - departure(u). A negative difference means the
// trip crossed midnight and gets one service day added. Pairs that
// collapse onto a single node are skipped.
//
// Trips are processed in sorted trip_id order, which makes edge insertion
// order, and with it neighbor iteration order, independent of input row
// order.
func Assemble(tables *gtfs.Tables, opts AssembleOptions) *Graph {
	routes := make(map[string]gtfs.Route)
	for _, r := range tables.Routes {
		if opts.keeps(r.Type) {
			routes[r.ID] = r
		}
	}

	tripRoute := make(map[string]string)
	for _, t := range tables.Trips {
		if _, ok := routes[t.RouteID]; ok {
			tripRoute[t.ID] = t.RouteID
		}
	}

	sequences := make(map[string][]gtfs.StopTime)
	used := make(map[string]struct{})
	for _, st := range tables.StopTimes {
		if _, ok := tripRoute[st.TripID]; !ok {
			continue
		}
		sequences[st.TripID] = append(sequences[st.TripID], st)
		used[st.StopID] = struct{}{}
	}
	for _, seq := range sequences {
		sort.SliceStable(seq, func(i, j int) bool {
			return seq[i].StopSequence < seq[j].StopSequence
		})
	}

	nodes, stopToNode := ClusterStops(tables.Stops, used)

	g := NewGraph()
	for _, n := range nodes {
		g.AddNode(n)
	}

	tripIDs := make([]string, 0, len(sequences))
	for id := range sequences {
		tripIDs = append(tripIDs, id)
	}
	sort.Strings(tripIDs)

	for _, tripID := range tripIDs {
		route := routes[tripRoute[tripID]]

		// Compact the trip to resolvable nodes; stops without a stop
		// record, and nameless stops, drop out and their neighbors
		// become adjacent.
		var (
			path []string
			arr  []int
			dep  []int
		)
		for _, st := range sequences[tripID] {
			node, ok := stopToNode[st.StopID]
			if !ok || node == "" {
				continue
			}
			path = append(path, node)
			arr = append(arr, gtfs.ParseTime(st.Arrival))
			dep = append(dep, gtfs.ParseTime(st.Departure))
		}

		for i := 0; i+1 < len(path); i++ {
			u, v := path[i], path[i+1]
			if u == v {
				continue
			}
			sample := arr[i+1] - dep[i]
			if sample < 0 {
				sample += gtfs.SecondsPerDay
			}
			g.Connect(u, v, route.ID, route.Type, sample)
		}
	}

	return g
}
