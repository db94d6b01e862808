package network

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// graphSnapshot is the gob wire form of a Graph. Nodes and edges are
// flattened to values; adjacency and the edge index are rebuilt on decode
// so the decoded graph shares no aliased pointers with the wire form.
type graphSnapshot struct {
	Nodes     []Node
	Edges     []Edge // insertion order
	Weighting WeightModel
}

func (g *Graph) snapshot() graphSnapshot {
	snap := graphSnapshot{
		Nodes:     make([]Node, 0, len(g.nodes)),
		Edges:     make([]Edge, 0, len(g.edges)),
		Weighting: g.weighting,
	}
	for _, n := range g.Nodes() {
		snap.Nodes = append(snap.Nodes, *n)
	}
	for _, e := range g.edges {
		snap.Edges = append(snap.Edges, *e)
	}
	return snap
}

func restoreGraph(snap graphSnapshot) *Graph {
	g := NewGraph()
	for i := range snap.Nodes {
		n := snap.Nodes[i]
		g.nodes[n.ID] = &n
	}
	for i := range snap.Edges {
		e := snap.Edges[i]
		g.edges = append(g.edges, &e)
		g.edgeIndex[keyFor(e.U, e.V)] = &e
		g.adj[e.U] = append(g.adj[e.U], &e)
		g.adj[e.V] = append(g.adj[e.V], &e)
	}
	g.weighting = snap.Weighting
	return g
}

// Restore builds a graph from flattened node and edge records, rebuilding
// the edge index and adjacency lists. Persistence layers use it to
// reconstruct a graph from their own storage shape.
func Restore(nodes []Node, edges []Edge, weighting WeightModel) *Graph {
	return restoreGraph(graphSnapshot{Nodes: nodes, Edges: edges, Weighting: weighting})
}

// SerializeGraph encodes a graph to bytes using gob encoding. This is
// useful for disk-based caching to avoid re-assembling the graph from the
// feed on every run.
//
// Thread safety: safe for concurrent use once the graph is fully built.
func SerializeGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeGraphToWriter(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeGraph decodes a graph from bytes produced by SerializeGraph.
// Use this to load a previously serialized graph from a disk cache.
//
// Thread safety: the returned graph is safe for concurrent read access.
func DeserializeGraph(data []byte) (*Graph, error) {
	return DeserializeGraphFromReader(bytes.NewReader(data))
}

// SerializeGraphToFile writes a graph to a file using gob encoding. This
// is a convenience wrapper around SerializeGraph for direct file I/O.
func SerializeGraphToFile(g *Graph, path string) error {
	data, err := SerializeGraph(g)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DeserializeGraphFromFile reads a graph from a file written by
// SerializeGraphToFile.
func DeserializeGraphFromFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return DeserializeGraph(data)
}

// SerializeGraphToWriter writes a graph to an io.Writer using gob
// encoding, for custom storage backends (S3, MinIO, etc.).
func SerializeGraphToWriter(g *Graph, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(g.snapshot()); err != nil {
		return fmt.Errorf("failed to encode graph: %w", err)
	}
	return nil
}

// DeserializeGraphFromReader reads a graph from an io.Reader, for custom
// storage backends.
func DeserializeGraphFromReader(r io.Reader) (*Graph, error) {
	var snap graphSnapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode graph: %w", err)
	}
	return restoreGraph(snap), nil
}
