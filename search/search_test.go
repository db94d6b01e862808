package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transit-graph/network"
)

// lineGraph builds A-B-C-D with travel-time weights 60, 120, 60.
func lineGraph(t *testing.T) *network.Graph {
	t.Helper()
	g := network.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		g.AddNode(&network.Node{ID: id})
	}
	g.Connect("A", "B", "U1", 402, 60)
	g.Connect("B", "C", "U1", 402, 120)
	g.Connect("C", "D", "U1", 402, 60)
	require.NoError(t, g.ApplyWeights(network.WeightTravelTime))
	return g
}

// ringGraph builds a five node cycle A-B-C-D-E-A, unweighted. From A, the
// short way to C is via B (2 edges), the long way via E and D (3 edges).
func ringGraph() *network.Graph {
	g := network.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		g.AddNode(&network.Node{ID: id})
	}
	g.Connect("A", "B", "U1", 402, 60)
	g.Connect("B", "C", "U1", 402, 60)
	g.Connect("C", "D", "U1", 402, 60)
	g.Connect("D", "E", "U1", 402, 60)
	g.Connect("A", "E", "U1", 402, 60)
	return g
}

// splitGraph builds two disconnected components A-B and X-Y.
func splitGraph() *network.Graph {
	g := network.NewGraph()
	for _, id := range []string{"A", "B", "X", "Y"} {
		g.AddNode(&network.Node{ID: id})
	}
	g.Connect("A", "B", "U1", 402, 60)
	g.Connect("X", "Y", "S1", 109, 60)
	return g
}
