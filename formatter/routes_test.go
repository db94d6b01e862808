package formatter

import (
	"testing"

	"github.com/theoremus-urban-solutions/transit-graph/gtfs"
	"github.com/theoremus-urban-solutions/transit-graph/network"
)

func TestRouteColors(t *testing.T) {
	routes := []gtfs.Route{
		{ID: "U3", Color: "FFD600"},
		{ID: "S1", Color: " 006f35 "},
		{ID: "short", Color: "fff"},
		{ID: "blank", Color: ""},
		{ID: "junk", Color: "GGGGGG"},
		{ID: "odd", Color: "12345"},
	}

	got := RouteColors(routes)
	want := map[string]string{
		"U3":    "#FFD600",
		"S1":    "#006f35",
		"short": "#fff",
		"blank": "#999999",
		"junk":  "#999999",
		"odd":   "#999999",
	}
	for id, color := range want {
		if got[id] != color {
			t.Errorf("color[%s] = %q, want %q", id, got[id], color)
		}
	}
}

func TestRouteNames(t *testing.T) {
	routes := []gtfs.Route{
		{ID: "hvv:U3", ShortName: "U3"},
		{ID: "hvv:unnamed"},
	}

	got := RouteNames(routes)
	if got["hvv:U3"] != "U3" {
		t.Errorf("name = %q, want short name U3", got["hvv:U3"])
	}
	if got["hvv:unnamed"] != "hvv:unnamed" {
		t.Errorf("name = %q, want fallback to the route ID", got["hvv:unnamed"])
	}
}

func TestRouteSegments(t *testing.T) {
	g := displayGraph()
	names := map[string]string{"S1": "S1", "U3": "U3"}

	t.Run("transfer splits legs", func(t *testing.T) {
		got := RouteSegments(g, []string{"Altona", "Jungfernstieg", "Barmbek"}, names)
		want := []string{
			"Altona - S1 - Jungfernstieg",
			"Jungfernstieg - S1, U3 - Barmbek",
		}
		if len(got) != len(want) {
			t.Fatalf("segments = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("segment %d = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("same routes stay one leg", func(t *testing.T) {
		line := network.NewGraph()
		line.Connect("A", "B", "S1", 109, 60)
		line.Connect("B", "C", "S1", 109, 60)
		got := RouteSegments(line, []string{"A", "B", "C"}, nil)
		if len(got) != 1 || got[0] != "A - S1 - C" {
			t.Errorf("segments = %v, want a single leg A - S1 - C", got)
		}
	})

	t.Run("missing edge closes the leg", func(t *testing.T) {
		got := RouteSegments(g, []string{"Altona", "Jungfernstieg", "Ghost", "Barmbek"}, names)
		if len(got) != 1 || got[0] != "Altona - S1 - Jungfernstieg" {
			t.Errorf("segments = %v, want the leg closed at the gap", got)
		}
	})

	t.Run("short paths have no legs", func(t *testing.T) {
		if got := RouteSegments(g, []string{"Altona"}, names); got != nil {
			t.Errorf("segments = %v, want none", got)
		}
		if got := RouteSegments(g, nil, names); got != nil {
			t.Errorf("segments = %v, want none", got)
		}
	})

	t.Run("nil names fall back to IDs", func(t *testing.T) {
		got := RouteSegments(g, []string{"Altona", "Jungfernstieg"}, nil)
		if len(got) != 1 || got[0] != "Altona - S1 - Jungfernstieg" {
			t.Errorf("segments = %v, want IDs as labels", got)
		}
	})
}
