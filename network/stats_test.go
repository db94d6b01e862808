package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theoremus-urban-solutions/transit-graph/network"
)

func TestStatsEmptyGraph(t *testing.T) {
	s := network.NewGraph().Stats()

	assert.Equal(t, 0, s.Nodes)
	assert.Equal(t, 0, s.Edges)
	assert.Equal(t, 0, s.MinDegree)
	assert.Equal(t, 0, s.MaxDegree)
	assert.Equal(t, 0.0, s.MeanDegree)
	assert.Empty(t, s.Degrees)
}

func TestStatsLineGraph(t *testing.T) {
	g := network.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		g.AddNode(&network.Node{ID: id})
	}
	g.Connect("A", "B", "U1", 402, 60)
	g.Connect("B", "C", "U1", 402, 60)

	s := g.Stats()

	assert.Equal(t, 3, s.Nodes)
	assert.Equal(t, 2, s.Edges)
	assert.Equal(t, 1, s.MinDegree)
	assert.Equal(t, 2, s.MaxDegree)
	assert.InDelta(t, 4.0/3.0, s.MeanDegree, 1e-12)
	assert.Equal(t, map[string]int{"A": 1, "B": 2, "C": 1}, s.Degrees)
}

func TestStatsCountsIsolatedNodes(t *testing.T) {
	g := network.NewGraph()
	g.AddNode(&network.Node{ID: "A"})
	g.AddNode(&network.Node{ID: "B"})
	g.AddNode(&network.Node{ID: "Depot"})
	g.Connect("A", "B", "U1", 402, 60)

	s := g.Stats()

	assert.Equal(t, 3, s.Nodes)
	assert.Equal(t, 1, s.Edges)
	assert.Equal(t, 0, s.MinDegree)
	assert.Equal(t, 1, s.MaxDegree)
	assert.Equal(t, 0, s.Degrees["Depot"])
}
