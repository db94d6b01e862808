package server

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/theoremus-urban-solutions/transit-graph/network"
)

// nearestLevel sets the S2 cell size for bucketing nodes. Level 10 keeps
// a metro-area network in a handful of cells while still pruning most of
// the graph on larger deployments.
const nearestLevel = 10

// nearestIndex buckets graph nodes by S2 cell. It is built once at
// server construction and read concurrently without locking.
type nearestIndex struct {
	buckets map[s2.CellID][]*network.Node
	all     []*network.Node
}

func newNearestIndex(g *network.Graph) *nearestIndex {
	idx := &nearestIndex{buckets: map[s2.CellID][]*network.Node{}}
	if g == nil {
		return idx
	}
	for _, n := range g.Nodes() {
		cell := cellAt(n.Lat, n.Lon)
		idx.buckets[cell] = append(idx.buckets[cell], n)
		idx.all = append(idx.all, n)
	}
	return idx
}

func cellAt(lat, lon float64) s2.CellID {
	return s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lon)).Parent(nearestLevel)
}

// Nearest returns the node closest to the query point by haversine
// distance, with the distance in kilometers. The query cell and its
// neighbors are scanned first; when that neighborhood is empty, or its
// best hit is far enough away that a closer node could sit outside it,
// the whole graph is scanned. Distance ties go to the smaller node ID.
func (idx *nearestIndex) Nearest(lat, lon float64) (*network.Node, float64, bool) {
	if len(idx.all) == 0 {
		return nil, 0, false
	}
	cell := cellAt(lat, lon)
	var candidates []*network.Node
	candidates = append(candidates, idx.buckets[cell]...)
	for _, nb := range cell.AllNeighbors(nearestLevel) {
		candidates = append(candidates, idx.buckets[nb]...)
	}

	best, bestKM := scanNearest(candidates, lat, lon)
	// Anything outside the scanned neighborhood is at least one cell
	// width from the query point.
	coverKM := s2.MinWidthMetric.Value(nearestLevel) * network.EarthRadiusKM
	if best == nil || bestKM >= coverKM {
		best, bestKM = scanNearest(idx.all, lat, lon)
	}
	return best, bestKM, true
}

func scanNearest(nodes []*network.Node, lat, lon float64) (*network.Node, float64) {
	var best *network.Node
	bestKM := math.Inf(1)
	for _, n := range nodes {
		d := network.HaversineKM(lat, lon, n.Lat, n.Lon)
		if d < bestKM || (d == bestKM && best != nil && n.ID < best.ID) {
			best = n
			bestKM = d
		}
	}
	return best, bestKM
}
