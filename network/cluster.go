package network

import (
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/transit-graph/gtfs"
)

// ClusterStops merges stops sharing a trimmed stop_name into one Node per
// name and returns the nodes sorted by ID together with the stop_id to
// node ID mapping. Stops outside the used set are discarded first, so
// stations no retained trip ever serves do not become nodes. Coordinates
// are the arithmetic mean over a node's members; members keep stops.txt
// order. A stop with a whitespace-only name lands in the "" node, which
// stays isolated during assembly.
func ClusterStops(stops []gtfs.Stop, used map[string]struct{}) ([]*Node, map[string]string) {
	byName := map[string]*Node{}
	sums := map[string][2]float64{}
	stopToNode := make(map[string]string, len(used))

	for _, s := range stops {
		if _, ok := used[s.ID]; !ok {
			continue
		}
		name := strings.TrimSpace(s.Name)
		n, ok := byName[name]
		if !ok {
			n = &Node{ID: name}
			byName[name] = n
		}
		n.StopIDs = append(n.StopIDs, s.ID)
		sum := sums[name]
		sums[name] = [2]float64{sum[0] + s.Lat, sum[1] + s.Lon}
		stopToNode[s.ID] = name
	}

	nodes := make([]*Node, 0, len(byName))
	for name, n := range byName {
		count := float64(len(n.StopIDs))
		sum := sums[name]
		n.Lat = sum[0] / count
		n.Lon = sum[1] / count
		n.Transfer = len(n.StopIDs) > 1
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes, stopToNode
}
