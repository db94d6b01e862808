package network

// Stats summarizes graph size and connectivity.
type Stats struct {
	Nodes      int
	Edges      int
	MinDegree  int
	MaxDegree  int
	MeanDegree float64
	Degrees    map[string]int // node ID -> degree
}

// Stats computes size and degree summaries. All degree figures are 0 for
// an empty graph.
func (g *Graph) Stats() Stats {
	s := Stats{
		Nodes:   len(g.nodes),
		Edges:   len(g.edges),
		Degrees: make(map[string]int, len(g.nodes)),
	}
	if len(g.nodes) == 0 {
		return s
	}

	first := true
	total := 0
	for id := range g.nodes {
		d := len(g.adj[id])
		s.Degrees[id] = d
		total += d
		if first || d < s.MinDegree {
			s.MinDegree = d
		}
		if first || d > s.MaxDegree {
			s.MaxDegree = d
		}
		first = false
	}
	s.MeanDegree = float64(total) / float64(len(g.nodes))
	return s
}
