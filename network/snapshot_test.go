package network_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transit-graph/network"
)

func snapshotFixture(t *testing.T) *network.Graph {
	t.Helper()
	g := network.Assemble(lineTables(), network.AssembleOptions{})
	require.NoError(t, g.ApplyWeights(network.WeightTravelTime))
	return g
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := snapshotFixture(t)

	data, err := network.SerializeGraph(g)
	require.NoError(t, err)

	got, err := network.DeserializeGraph(data)
	require.NoError(t, err)

	assert.Equal(t, g.NodeIDs(), got.NodeIDs())
	assert.Equal(t, g.NumEdges(), got.NumEdges())
	assert.Equal(t, g.Weighting(), got.Weighting())

	want, have := g.Edges(), got.Edges()
	for i := range want {
		assert.Equal(t, *want[i], *have[i])
	}

	a, ok := got.Node("A")
	require.True(t, ok)
	assert.Equal(t, []string{"1"}, a.StopIDs)

	// Adjacency is rebuilt, not decoded, and must agree with the edge set.
	for _, id := range got.NodeIDs() {
		assert.Equal(t, g.Degree(id), got.Degree(id))
	}

	// The restored edge objects are shared between index and adjacency.
	ab, ok := got.Edge("A", "B")
	require.True(t, ok)
	require.NotEmpty(t, got.Neighbors("A"))
	assert.Same(t, ab, got.Neighbors("A")[0])
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	g := snapshotFixture(t)
	path := filepath.Join(t.TempDir(), "graph.gob")

	require.NoError(t, network.SerializeGraphToFile(g, path))
	got, err := network.DeserializeGraphFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.NodeIDs(), got.NodeIDs())
}

func TestSnapshotWriterReader(t *testing.T) {
	g := snapshotFixture(t)

	var buf bytes.Buffer
	require.NoError(t, network.SerializeGraphToWriter(g, &buf))
	got, err := network.DeserializeGraphFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.NumEdges(), got.NumEdges())
}

func TestRestore(t *testing.T) {
	nodes := []network.Node{
		{ID: "A", Lat: 1, Lon: 2, StopIDs: []string{"1"}},
		{ID: "B", Lat: 3, Lon: 4, StopIDs: []string{"2", "3"}, Transfer: true},
	}
	edges := []network.Edge{
		{U: "A", V: "B", Routes: []string{"U1"}, RouteTypes: []int{402}, Samples: []int{120}, Weight: 120},
	}

	g := network.Restore(nodes, edges, network.WeightTravelTime)

	assert.Equal(t, []string{"A", "B"}, g.NodeIDs())
	assert.Equal(t, 1, g.NumEdges())
	assert.Equal(t, network.WeightTravelTime, g.Weighting())

	ab, ok := g.Edge("B", "A")
	require.True(t, ok)
	assert.Equal(t, 120.0, ab.Weight)

	// Index and adjacency point at one edge object.
	require.NotEmpty(t, g.Neighbors("B"))
	assert.Same(t, ab, g.Neighbors("B")[0])
}

func TestSnapshotRejectsGarbage(t *testing.T) {
	_, err := network.DeserializeGraph([]byte("not a gob stream"))
	assert.Error(t, err)
}

func TestSnapshotMissingFile(t *testing.T) {
	_, err := network.DeserializeGraphFromFile(filepath.Join(t.TempDir(), "absent.gob"))
	assert.Error(t, err)
}
