package formatter

import (
	"strings"
	"testing"
)

func TestGraphDOT(t *testing.T) {
	out := GraphDOT(displayGraph(), DOTOptions{})

	if !strings.HasPrefix(out, "graph transit {\n") {
		t.Fatalf("output does not open an undirected graph:\n%s", out)
	}
	for _, want := range []string{
		"\"Altona\";",
		"\"Altona\" -- \"Jungfernstieg\";",
		"\"Jungfernstieg\" -- \"Barmbek\";",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	t.Run("transfer stations stand out", func(t *testing.T) {
		if !strings.Contains(out, "\"Jungfernstieg\" [width=0.16, color=\"#ff7f00\", xlabel=\"Jungfernstieg\"];") {
			t.Errorf("Jungfernstieg not highlighted as transfer:\n%s", out)
		}
	})

	t.Run("no positions without geo", func(t *testing.T) {
		if strings.Contains(out, "pos=") || strings.Contains(out, "layout=neato") {
			t.Error("positions should only appear with the Geo option")
		}
	})
}

func TestGraphDOTGeo(t *testing.T) {
	out := GraphDOT(displayGraph(), DOTOptions{Geo: true})

	if !strings.Contains(out, "layout=neato;") {
		t.Error("geo output should select the neato layout")
	}
	if !strings.Contains(out, "pos=\"9.935000,53.552000!\"") {
		t.Errorf("Altona not pinned at its coordinates:\n%s", out)
	}
}

func TestGraphDOTPathOverlay(t *testing.T) {
	out := GraphDOT(displayGraph(), DOTOptions{Path: []string{"Altona", "Jungfernstieg"}})

	if !strings.Contains(out, "\"Altona\" [shape=star, width=0.25, color=green, xlabel=\"Altona\"];") {
		t.Errorf("path start not marked:\n%s", out)
	}
	if !strings.Contains(out, "\"Jungfernstieg\" [shape=star, width=0.25, color=red, xlabel=\"Jungfernstieg\"];") {
		t.Errorf("path end not marked:\n%s", out)
	}
	if !strings.Contains(out, "\"Altona\" -- \"Jungfernstieg\" [color=red, penwidth=3];") {
		t.Errorf("path edge not highlighted:\n%s", out)
	}
	if !strings.Contains(out, "\"Jungfernstieg\" -- \"Barmbek\" [color=lightgray, penwidth=0.5];") {
		t.Errorf("off-path edge not faded:\n%s", out)
	}
}

func TestGraphDOTRouteStyling(t *testing.T) {
	out := GraphDOT(displayGraph(), DOTOptions{
		RouteColors: map[string]string{"S1": "#006F35", "U3": "#FFD600"},
		RouteNames:  map[string]string{"S1": "S1", "U3": "U3"},
	})

	if !strings.Contains(out, "\"Altona\" -- \"Jungfernstieg\" [label=\"S1\", color=\"#006F35\"];") {
		t.Errorf("single-route edge not styled:\n%s", out)
	}
	// Parallel routes turn into a Graphviz color list.
	if !strings.Contains(out, "\"Jungfernstieg\" -- \"Barmbek\" [label=\"S1, U3\", color=\"#006F35:#FFD600\"];") {
		t.Errorf("parallel-route edge not styled:\n%s", out)
	}
}

func TestGraphDOTStable(t *testing.T) {
	a := GraphDOT(displayGraph(), DOTOptions{Geo: true})
	b := GraphDOT(displayGraph(), DOTOptions{Geo: true})
	if a != b {
		t.Error("repeated DOT emission differs for the same graph")
	}
}
