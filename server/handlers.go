package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/theoremus-urban-solutions/transit-graph/formatter"
	"github.com/theoremus-urban-solutions/transit-graph/search"
	"github.com/theoremus-urban-solutions/transit-graph/store"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NodesResponse is the JSON body of GET /api/nodes.
type NodesResponse struct {
	Nodes []formatter.NodeDocument `json:"nodes"`
	Count int                      `json:"count"`
}

// NearestResponse is the JSON body of GET /api/nearest.
type NearestResponse struct {
	Node       formatter.NodeDocument `json:"node"`
	DistanceKM float64                `json:"distance_km"`
}

// SummaryResponse is the JSON body of GET /api/allpairs/summary. Costs
// are in Unit, or hop counts when Unit is absent.
type SummaryResponse struct {
	Pairs    int     `json:"pairs"`
	MeanCost float64 `json:"mean_cost"`
	MinCost  float64 `json:"min_cost"`
	MaxCost  float64 `json:"max_cost"`
	Unit     string  `json:"unit,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONBytes(w http.ResponseWriter, status int, buf []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf)
}

func httpError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg})
}

func parseLatLon(r *http.Request) (float64, float64, error) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr == "" || lonStr == "" {
		return 0, 0, fmt.Errorf("missing lat or lon")
	}
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lon, err2 := strconv.ParseFloat(lonStr, 64)
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("invalid lat or lon")
	}
	return lat, lon, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"nodes":     s.graph.NumNodes(),
		"edges":     s.graph.NumEdges(),
		"weighting": string(s.graph.Weighting()),
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	doc := formatter.BuildStatsDocument(s.graph.Stats())
	// summary only, the per-node degree map can be large
	doc.Degrees = nil
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleNodes(w http.ResponseWriter, r *http.Request) {
	nodes := s.graph.Nodes()
	out := make([]formatter.NodeDocument, 0, len(nodes))
	for _, n := range nodes {
		doc := formatter.BuildNodeDocument(s.graph, n)
		// the listing stays compact, member platforms live on the
		// detail endpoint
		doc.StopIDs = nil
		out = append(out, doc)
	}
	writeJSON(w, http.StatusOK, NodesResponse{Nodes: out, Count: len(out)})
}

func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	n, ok := s.graph.Node(id)
	if !ok {
		httpError(w, http.StatusNotFound, fmt.Sprintf("unknown node %q", id))
		return
	}
	writeJSON(w, http.StatusOK, formatter.BuildNodeDocument(s.graph, n))
}

func (s *Server) handleNearest(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := parseLatLon(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, distKM, ok := s.index.Nearest(lat, lon)
	if !ok {
		httpError(w, http.StatusNotFound, "graph has no nodes")
		return
	}
	writeJSON(w, http.StatusOK, NearestResponse{
		Node:       formatter.BuildNodeDocument(s.graph, n),
		DistanceKM: distKM,
	})
}

// handlePath answers GET /api/path. An unknown station is not an error:
// the search comes back found=false and the status stays 200.
func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := strings.TrimSpace(q.Get("from"))
	to := strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		httpError(w, http.StatusBadRequest, "missing from or to")
		return
	}
	algo := strings.ToLower(strings.TrimSpace(q.Get("algo")))
	if algo == "" {
		algo = "dijkstra"
	}

	key := s.cache.memoKey("path", from, to, algo)
	if buf, ok := s.cache.get(key); ok {
		writeJSONBytes(w, http.StatusOK, buf)
		return
	}

	var res search.Result
	switch algo {
	case "bfs":
		res = search.BFS(s.graph, from, to)
	case "dfs":
		res = search.DFS(s.graph, from, to)
	case "dijkstra":
		res = s.dijkstra(r.Context(), from, to)
	default:
		httpError(w, http.StatusBadRequest, fmt.Sprintf("unknown algorithm %q", algo))
		return
	}

	unit := ""
	if algo == "dijkstra" {
		unit = s.graph.Weighting().Unit()
	}
	buf, err := json.Marshal(formatter.BuildResultDocument(algo, from, to, res, unit))
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.cache.set(key, buf)
	writeJSONBytes(w, http.StatusOK, buf)
}

// dijkstra prefers a stored all-pairs row when the server carries one. A
// missing row can mean an unreachable pair or a node the snapshot never
// saw, so it falls through to a live run either way.
func (s *Server) dijkstra(ctx context.Context, from, to string) search.Result {
	if s.store != nil && s.snapshotID != "" {
		if res, err := s.store.Pair(ctx, s.snapshotID, from, to); err == nil {
			return res
		}
	}
	return search.Dijkstra(s.graph, from, to)
}

func (s *Server) handleAllPairsSummary(w http.ResponseWriter, r *http.Request) {
	key := s.cache.memoKey("allpairs", "summary")
	if buf, ok := s.cache.get(key); ok {
		writeJSONBytes(w, http.StatusOK, buf)
		return
	}

	var sum store.PairSummary
	if s.store != nil && s.snapshotID != "" {
		var err error
		sum, err = s.store.Summary(r.Context(), s.snapshotID)
		if err != nil {
			httpError(w, http.StatusInternalServerError, err.Error())
			return
		}
	} else {
		results, err := search.AllPairs(r.Context(), s.graph)
		if err != nil {
			httpError(w, http.StatusInternalServerError, err.Error())
			return
		}
		sum = summarize(results)
	}

	buf, err := json.Marshal(SummaryResponse{
		Pairs:    sum.Pairs,
		MeanCost: sum.MeanCost,
		MinCost:  sum.MinCost,
		MaxCost:  sum.MaxCost,
		Unit:     s.graph.Weighting().Unit(),
	})
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.cache.set(key, buf)
	writeJSONBytes(w, http.StatusOK, buf)
}

func summarize(results map[search.Pair]search.Result) store.PairSummary {
	var sum store.PairSummary
	total := 0.0
	for _, res := range results {
		if !res.Found {
			continue
		}
		if sum.Pairs == 0 || res.Cost < sum.MinCost {
			sum.MinCost = res.Cost
		}
		if sum.Pairs == 0 || res.Cost > sum.MaxCost {
			sum.MaxCost = res.Cost
		}
		total += res.Cost
		sum.Pairs++
	}
	if sum.Pairs > 0 {
		sum.MeanCost = total / float64(sum.Pairs)
	}
	return sum
}
