package network

import (
	"sort"
)

// Node is a logical station: every platform whose trimmed stop_name matches
// the node ID, merged into one graph vertex.
type Node struct {
	ID       string
	Lat      float64 // arithmetic mean over member platforms
	Lon      float64
	StopIDs  []string // member stop_ids in stops.txt order
	Transfer bool     // more than one member platform
}

// Edge is an undirected connection between two stations. It accumulates
// attributes from every trip observed to traverse the segment in either
// direction: the route IDs and route types involved, and one travel-time
// sample per traversal. Weight is derived data set by Graph.ApplyWeights.
type Edge struct {
	U, V       string   // endpoints in first-observed orientation
	Routes     []string // unique route IDs, in observation order
	RouteTypes []int    // unique route type codes, in observation order
	Samples    []int    // directed travel times in seconds, one per traversal
	Weight     float64
}

// Other returns the endpoint opposite id, or "" when id is not an endpoint.
func (e *Edge) Other(id string) string {
	switch id {
	case e.U:
		return e.V
	case e.V:
		return e.U
	}
	return ""
}

// MinSample returns the smallest travel-time sample, or false when the
// edge has none.
func (e *Edge) MinSample() (int, bool) {
	if len(e.Samples) == 0 {
		return 0, false
	}
	min := e.Samples[0]
	for _, s := range e.Samples[1:] {
		if s < min {
			min = s
		}
	}
	return min, true
}

// RouteIDs returns the edge's route IDs sorted, for stable display.
func (e *Edge) RouteIDs() []string {
	out := make([]string, len(e.Routes))
	copy(out, e.Routes)
	sort.Strings(out)
	return out
}

func (e *Edge) addRoute(routeID string, routeType int) {
	found := false
	for _, r := range e.Routes {
		if r == routeID {
			found = true
			break
		}
	}
	if !found {
		e.Routes = append(e.Routes, routeID)
	}
	found = false
	for _, t := range e.RouteTypes {
		if t == routeType {
			found = true
			break
		}
	}
	if !found {
		e.RouteTypes = append(e.RouteTypes, routeType)
	}
}

// edgeKey is the unordered pair identity of an edge.
type edgeKey [2]string

func keyFor(u, v string) edgeKey {
	if u < v {
		return edgeKey{u, v}
	}
	return edgeKey{v, u}
}

// Graph is an undirected station graph. One physical edge exists per node
// pair; repeated traversals accumulate onto it. Not safe for concurrent
// mutation; read-only use from multiple goroutines is fine.
type Graph struct {
	nodes     map[string]*Node
	edges     []*Edge // insertion order
	edgeIndex map[edgeKey]*Edge
	adj       map[string][]*Edge // incident edges in insertion order
	weighting WeightModel
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:     map[string]*Node{},
		edgeIndex: map[edgeKey]*Edge{},
		adj:       map[string][]*Edge{},
	}
}

// AddNode inserts n. A node with the same ID is left untouched.
func (g *Graph) AddNode(n *Node) {
	if _, ok := g.nodes[n.ID]; ok {
		return
	}
	g.nodes[n.ID] = n
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all nodes sorted by ID.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NodeIDs returns all node IDs sorted.
func (g *Graph) NodeIDs() []string {
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Edge returns the edge between u and v in either orientation.
func (g *Graph) Edge(u, v string) (*Edge, bool) {
	e, ok := g.edgeIndex[keyFor(u, v)]
	return e, ok
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// Neighbors returns the edges incident to id in insertion order. The order
// is stable across runs because assembly is deterministic.
func (g *Graph) Neighbors(id string) []*Edge {
	return g.adj[id]
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) int {
	return len(g.adj[id])
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the edge count.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Connect records one directed traversal from u to v: the unordered pair
// gets an edge on first contact, and the route ID, route type and
// travel-time sample accumulate onto it. Self-loops are rejected. Missing
// endpoint nodes are created bare, but the assembler always registers
// clustered nodes first.
func (g *Graph) Connect(u, v, routeID string, routeType, sample int) {
	if u == v {
		return
	}
	if _, ok := g.nodes[u]; !ok {
		g.nodes[u] = &Node{ID: u}
	}
	if _, ok := g.nodes[v]; !ok {
		g.nodes[v] = &Node{ID: v}
	}
	key := keyFor(u, v)
	e, ok := g.edgeIndex[key]
	if !ok {
		e = &Edge{U: u, V: v}
		g.edgeIndex[key] = e
		g.edges = append(g.edges, e)
		g.adj[u] = append(g.adj[u], e)
		g.adj[v] = append(g.adj[v], e)
	}
	e.addRoute(routeID, routeType)
	e.Samples = append(e.Samples, sample)
}

// Weighting returns the cost model applied by the last ApplyWeights call,
// or WeightNone for a freshly assembled graph.
func (g *Graph) Weighting() WeightModel {
	return g.weighting
}

// Weighted reports whether edge weights have been assigned.
func (g *Graph) Weighted() bool {
	return g.weighting != WeightNone
}
