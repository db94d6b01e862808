package formatter

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/transit-graph/network"
	"github.com/theoremus-urban-solutions/transit-graph/search"
)

// displayGraph builds a three-station graph: Altona -S1- Jungfernstieg,
// Jungfernstieg -U3/S1- Barmbek, with Jungfernstieg a transfer station.
func displayGraph() *network.Graph {
	g := network.NewGraph()
	g.AddNode(&network.Node{ID: "Altona", Lat: 53.552, Lon: 9.935, StopIDs: []string{"1001"}})
	g.AddNode(&network.Node{ID: "Jungfernstieg", Lat: 53.553, Lon: 9.993, StopIDs: []string{"2001", "2002"}, Transfer: true})
	g.AddNode(&network.Node{ID: "Barmbek", Lat: 53.587, Lon: 10.044, StopIDs: []string{"3001"}})
	g.Connect("Altona", "Jungfernstieg", "S1", 109, 240)
	g.Connect("Jungfernstieg", "Barmbek", "U3", 402, 300)
	g.Connect("Jungfernstieg", "Barmbek", "S1", 109, 280)
	return g
}

func TestBuildGraphDocument(t *testing.T) {
	doc := BuildGraphDocument(displayGraph())

	if doc.NodeCount != 3 || doc.EdgeCount != 2 {
		t.Fatalf("counts = %d nodes, %d edges, want 3 and 2", doc.NodeCount, doc.EdgeCount)
	}
	if doc.Weighting != "" {
		t.Errorf("weighting = %q, want empty for an unweighted graph", doc.Weighting)
	}

	t.Run("nodes sorted by id", func(t *testing.T) {
		ids := make([]string, len(doc.Nodes))
		for i, n := range doc.Nodes {
			ids[i] = n.ID
		}
		want := []string{"Altona", "Barmbek", "Jungfernstieg"}
		for i := range want {
			if ids[i] != want[i] {
				t.Fatalf("node order = %v, want %v", ids, want)
			}
		}
	})

	t.Run("node fields", func(t *testing.T) {
		j := doc.Nodes[2]
		if !j.Transfer {
			t.Error("Jungfernstieg should be a transfer station")
		}
		if j.Degree != 2 {
			t.Errorf("Jungfernstieg degree = %d, want 2", j.Degree)
		}
		if len(j.StopIDs) != 2 {
			t.Errorf("Jungfernstieg stop_ids = %v, want two members", j.StopIDs)
		}
	})

	t.Run("edges sorted by endpoint pair", func(t *testing.T) {
		if doc.Edges[0].From != "Altona" || doc.Edges[0].To != "Jungfernstieg" {
			t.Errorf("first edge = %s -> %s, want Altona -> Jungfernstieg", doc.Edges[0].From, doc.Edges[0].To)
		}
		// Stored orientation survives sorting.
		if doc.Edges[1].From != "Jungfernstieg" || doc.Edges[1].To != "Barmbek" {
			t.Errorf("second edge = %s -> %s, want Jungfernstieg -> Barmbek", doc.Edges[1].From, doc.Edges[1].To)
		}
	})

	t.Run("accumulated edge attributes", func(t *testing.T) {
		e := doc.Edges[1]
		if len(e.Routes) != 2 || e.Routes[0] != "S1" || e.Routes[1] != "U3" {
			t.Errorf("routes = %v, want [S1 U3]", e.Routes)
		}
		if len(e.RouteTypes) != 2 || e.RouteTypes[0] != 109 || e.RouteTypes[1] != 402 {
			t.Errorf("route_types = %v, want [109 402]", e.RouteTypes)
		}
		if e.Traversals != 2 {
			t.Errorf("traversals = %d, want 2", e.Traversals)
		}
	})
}

func TestGraphJSONStable(t *testing.T) {
	a, err := GraphJSON(displayGraph())
	if err != nil {
		t.Fatalf("GraphJSON: %v", err)
	}

	// Same graph, different edge insertion order.
	g := network.NewGraph()
	g.AddNode(&network.Node{ID: "Barmbek", Lat: 53.587, Lon: 10.044, StopIDs: []string{"3001"}})
	g.AddNode(&network.Node{ID: "Jungfernstieg", Lat: 53.553, Lon: 9.993, StopIDs: []string{"2001", "2002"}, Transfer: true})
	g.AddNode(&network.Node{ID: "Altona", Lat: 53.552, Lon: 9.935, StopIDs: []string{"1001"}})
	g.Connect("Jungfernstieg", "Barmbek", "U3", 402, 300)
	g.Connect("Jungfernstieg", "Barmbek", "S1", 109, 280)
	g.Connect("Altona", "Jungfernstieg", "S1", 109, 240)

	b, err := GraphJSON(g)
	if err != nil {
		t.Fatalf("GraphJSON: %v", err)
	}
	if string(a) != string(b) {
		t.Error("same graph with different insertion order produced different JSON")
	}
}

func TestGraphJSONWeighted(t *testing.T) {
	g := displayGraph()
	if err := g.ApplyWeights(network.WeightTravelTime); err != nil {
		t.Fatalf("ApplyWeights: %v", err)
	}

	doc := BuildGraphDocument(g)
	if doc.Weighting != "travel-time" {
		t.Errorf("weighting = %q, want travel-time", doc.Weighting)
	}
	if doc.Edges[0].Weight != 240 {
		t.Errorf("Altona edge weight = %v, want 240", doc.Edges[0].Weight)
	}
	if doc.Edges[1].Weight != 280 {
		t.Errorf("Barmbek edge weight = %v, want min sample 280", doc.Edges[1].Weight)
	}
}

func TestBuildResultDocument(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r := search.Result{Path: []string{"Altona", "Jungfernstieg", "Barmbek"}, Cost: 520, Found: true}
		doc := BuildResultDocument("dijkstra", "Altona", "Barmbek", r, "s")
		if !doc.Found || doc.Edges != 2 {
			t.Fatalf("doc = %+v, want found with 2 edges", doc)
		}
		if doc.Cost == nil || *doc.Cost != 520 {
			t.Errorf("cost = %v, want 520", doc.Cost)
		}
		if doc.Unit != "s" {
			t.Errorf("unit = %q, want s", doc.Unit)
		}
	})

	t.Run("no path drops the infinite cost", func(t *testing.T) {
		r := search.Result{Cost: math.Inf(1)}
		doc := BuildResultDocument("bfs", "Altona", "Nirgendwo", r, "")
		if doc.Found || doc.Cost != nil || doc.Path != nil {
			t.Fatalf("doc = %+v, want empty not-found document", doc)
		}

		// Infinity is not representable in JSON; encoding must still work.
		b, err := ResultJSON("bfs", "Altona", "Nirgendwo", r, "")
		if err != nil {
			t.Fatalf("ResultJSON: %v", err)
		}
		if strings.Contains(string(b), "\"cost\"") {
			t.Errorf("not-found result should omit cost, got %s", b)
		}
		if !strings.Contains(string(b), "\"found\": false") {
			t.Errorf("result should carry found=false, got %s", b)
		}
	})
}

func TestStatsJSON(t *testing.T) {
	b, err := StatsJSON(displayGraph().Stats())
	if err != nil {
		t.Fatalf("StatsJSON: %v", err)
	}

	var doc StatsDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Nodes != 3 || doc.Edges != 2 {
		t.Errorf("counts = %d nodes, %d edges, want 3 and 2", doc.Nodes, doc.Edges)
	}
	if doc.MinDegree != 1 || doc.MaxDegree != 2 {
		t.Errorf("degree range = [%d, %d], want [1, 2]", doc.MinDegree, doc.MaxDegree)
	}
	if doc.Degrees["Jungfernstieg"] != 2 {
		t.Errorf("Jungfernstieg degree = %d, want 2", doc.Degrees["Jungfernstieg"])
	}
}
