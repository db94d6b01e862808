package cli

import (
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/transit-graph/config"
	"github.com/theoremus-urban-solutions/transit-graph/network"
	"github.com/theoremus-urban-solutions/transit-graph/search"
)

func TestExplainComparison(t *testing.T) {
	found := func(path ...string) search.Result {
		return search.Result{Path: path, Cost: float64(len(path) - 1), Found: true}
	}

	c := search.Compare(found("A", "B", "C", "D"), found("A", "D"))
	lines := explainComparison(c)
	if len(lines) == 0 {
		t.Fatal("no explanation")
	}
	last := lines[len(lines)-1]
	if !strings.Contains(last, "2 stations longer") {
		t.Errorf("longer-route closing line = %q", last)
	}

	c = search.Compare(found("A", "B"), found("A", "B"))
	lines = explainComparison(c)
	last = lines[len(lines)-1]
	if !strings.Contains(last, "identical") {
		t.Errorf("identical-route closing line = %q", last)
	}

	c = search.Compare(found("A", "B", "D"), found("A", "C", "D"))
	lines = explainComparison(c)
	last = lines[len(lines)-1]
	if !strings.Contains(last, "equally long") {
		t.Errorf("equal-length closing line = %q", last)
	}

	c = search.Compare(search.Result{}, search.Result{})
	lines = explainComparison(c)
	if len(lines) != 1 || !strings.Contains(lines[0], "not connected") {
		t.Errorf("disconnected explanation = %q", lines)
	}
}

func TestResolveWeight(t *testing.T) {
	withConfig(t, config.AppConfig{})

	m, err := resolveWeight("", "geographic")
	if err != nil || m != network.WeightGeographic {
		t.Errorf("fallback weight = %v, %v", m, err)
	}

	m, err = resolveWeight("", "")
	if err != nil || m != network.WeightNone {
		t.Errorf("empty weight = %v, %v", m, err)
	}

	withConfig(t, config.AppConfig{Graph: config.GraphConfig{Weight: "time"}})
	m, err = resolveWeight("", "geographic")
	if err != nil || m != network.WeightTravelTime {
		t.Errorf("config weight = %v, %v", m, err)
	}

	m, err = resolveWeight("distance", "")
	if err != nil || m != network.WeightGeographic {
		t.Errorf("flag weight = %v, %v", m, err)
	}

	if _, err := resolveWeight("steps", ""); err == nil {
		t.Error("expected error for unknown model")
	}
}
