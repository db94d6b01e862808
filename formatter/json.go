package formatter

import (
	"encoding/json"
	"sort"

	"github.com/theoremus-urban-solutions/transit-graph/network"
	"github.com/theoremus-urban-solutions/transit-graph/search"
)

// NodeDocument is the JSON shape of one station.
type NodeDocument struct {
	ID       string   `json:"id"`
	Lat      float64  `json:"lat"`
	Lon      float64  `json:"lon"`
	StopIDs  []string `json:"stop_ids,omitempty"`
	Transfer bool     `json:"transfer"`
	Degree   int      `json:"degree"`
}

// EdgeDocument is the JSON shape of one connection between two stations.
// From and To keep the first-observed travel direction.
type EdgeDocument struct {
	From       string   `json:"from"`
	To         string   `json:"to"`
	Routes     []string `json:"routes"`
	RouteTypes []int    `json:"route_types"`
	Traversals int      `json:"traversals"`
	Weight     float64  `json:"weight"`
}

// GraphDocument is the JSON shape of a whole station graph.
type GraphDocument struct {
	Weighting string         `json:"weighting,omitempty"`
	NodeCount int            `json:"node_count"`
	EdgeCount int            `json:"edge_count"`
	Nodes     []NodeDocument `json:"nodes"`
	Edges     []EdgeDocument `json:"edges"`
}

// ResultDocument is the JSON shape of one search result. Cost is absent
// when no path exists: infinity has no JSON encoding.
type ResultDocument struct {
	Algorithm string   `json:"algorithm,omitempty"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	Found     bool     `json:"found"`
	Path      []string `json:"path,omitempty"`
	Edges     int      `json:"edges"`
	Cost      *float64 `json:"cost,omitempty"`
	Unit      string   `json:"unit,omitempty"`
}

// StatsDocument is the JSON shape of graph statistics.
type StatsDocument struct {
	Nodes      int            `json:"nodes"`
	Edges      int            `json:"edges"`
	MinDegree  int            `json:"min_degree"`
	MaxDegree  int            `json:"max_degree"`
	MeanDegree float64        `json:"mean_degree"`
	Degrees    map[string]int `json:"degrees,omitempty"`
}

// BuildNodeDocument assembles the document form of one station.
func BuildNodeDocument(g *network.Graph, n *network.Node) NodeDocument {
	return NodeDocument{
		ID:       n.ID,
		Lat:      n.Lat,
		Lon:      n.Lon,
		StopIDs:  append([]string(nil), n.StopIDs...),
		Transfer: n.Transfer,
		Degree:   g.Degree(n.ID),
	}
}

func buildEdgeDocument(e *network.Edge) EdgeDocument {
	types := append([]int(nil), e.RouteTypes...)
	sort.Ints(types)
	return EdgeDocument{
		From:       e.U,
		To:         e.V,
		Routes:     e.RouteIDs(),
		RouteTypes: types,
		Traversals: len(e.Samples),
		Weight:     e.Weight,
	}
}

// BuildGraphDocument assembles the document form of g. Nodes are sorted
// by ID and edges by endpoint pair, so repeated builds of the same graph
// produce identical documents.
func BuildGraphDocument(g *network.Graph) GraphDocument {
	doc := GraphDocument{
		Weighting: string(g.Weighting()),
		NodeCount: g.NumNodes(),
		EdgeCount: g.NumEdges(),
		Nodes:     make([]NodeDocument, 0, g.NumNodes()),
		Edges:     make([]EdgeDocument, 0, g.NumEdges()),
	}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, BuildNodeDocument(g, n))
	}
	for _, e := range sortedEdges(g) {
		doc.Edges = append(doc.Edges, buildEdgeDocument(e))
	}
	return doc
}

// GraphJSON encodes g as an indented JSON document.
func GraphJSON(g *network.Graph) ([]byte, error) {
	return json.MarshalIndent(BuildGraphDocument(g), "", "  ")
}

// BuildResultDocument assembles the document form of one search result.
// The unit names the weighting that produced the cost, "" for hop counts.
func BuildResultDocument(algorithm, from, to string, r search.Result, unit string) ResultDocument {
	doc := ResultDocument{
		Algorithm: algorithm,
		From:      from,
		To:        to,
		Found:     r.Found,
	}
	if !r.Found {
		return doc
	}
	doc.Path = append([]string(nil), r.Path...)
	doc.Edges = r.Edges()
	cost := r.Cost
	doc.Cost = &cost
	doc.Unit = unit
	return doc
}

// ResultJSON encodes one search result as indented JSON.
func ResultJSON(algorithm, from, to string, r search.Result, unit string) ([]byte, error) {
	return json.MarshalIndent(BuildResultDocument(algorithm, from, to, r, unit), "", "  ")
}

// BuildStatsDocument assembles the document form of graph statistics.
func BuildStatsDocument(s network.Stats) StatsDocument {
	return StatsDocument{
		Nodes:      s.Nodes,
		Edges:      s.Edges,
		MinDegree:  s.MinDegree,
		MaxDegree:  s.MaxDegree,
		MeanDegree: s.MeanDegree,
		Degrees:    s.Degrees,
	}
}

// StatsJSON encodes graph statistics as indented JSON.
func StatsJSON(s network.Stats) ([]byte, error) {
	return json.MarshalIndent(BuildStatsDocument(s), "", "  ")
}

// pairKey normalizes an endpoint pair for ordering and lookup.
func pairKey(u, v string) [2]string {
	if u < v {
		return [2]string{u, v}
	}
	return [2]string{v, u}
}

// sortedEdges returns the graph's edges ordered by normalized endpoint
// pair. Stored orientation is untouched, only the list order changes.
func sortedEdges(g *network.Graph) []*network.Edge {
	edges := append([]*network.Edge(nil), g.Edges()...)
	sort.Slice(edges, func(i, j int) bool {
		a := pairKey(edges[i].U, edges[i].V)
		b := pairKey(edges[j].U, edges[j].V)
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		return a[1] < b[1]
	})
	return edges
}
