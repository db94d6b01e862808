package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/theoremus-urban-solutions/transit-graph/search"
)

// SavePairs persists precomputed results for a snapshot in one
// transaction. Only reachable pairs are written: a missing row is the
// stored form of "no path". Existing rows are replaced.
func (s *Store) SavePairs(ctx context.Context, snapshotID string, results map[search.Pair]search.Result) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pairs (snapshot_id, a, b, path_json, cost) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (snapshot_id, a, b) DO UPDATE SET
			path_json = excluded.path_json,
			cost = excluded.cost`)
	if err != nil {
		return fmt.Errorf("failed to prepare pair upsert: %w", err)
	}
	defer stmt.Close()

	for pair, res := range results {
		if !res.Found {
			continue
		}
		path, _ := json.Marshal(res.Path)
		if _, err := stmt.ExecContext(ctx, snapshotID, pair.A, pair.B, string(path), res.Cost); err != nil {
			return fmt.Errorf("failed to upsert pair %s-%s: %w", pair.A, pair.B, err)
		}
	}

	return tx.Commit()
}

// Pair returns the stored result for one station pair, with the path
// oriented from a to b regardless of stored order. An absent pair yields
// ErrNotFound.
func (s *Store) Pair(ctx context.Context, snapshotID, a, b string) (search.Result, error) {
	qa, qb := a, b
	flipped := false
	if qb < qa {
		qa, qb = qb, qa
		flipped = true
	}

	var pathJSON string
	var cost float64
	err := s.conn.QueryRowContext(ctx,
		"SELECT path_json, cost FROM pairs WHERE snapshot_id = ? AND a = ? AND b = ?",
		snapshotID, qa, qb).Scan(&pathJSON, &cost)
	if errors.Is(err, sql.ErrNoRows) {
		return search.Result{Cost: math.Inf(1)}, fmt.Errorf("%w: pair %s-%s", ErrNotFound, a, b)
	}
	if err != nil {
		return search.Result{Cost: math.Inf(1)}, fmt.Errorf("failed to read pair: %w", err)
	}

	var path []string
	if err := json.Unmarshal([]byte(pathJSON), &path); err != nil {
		return search.Result{Cost: math.Inf(1)}, fmt.Errorf("failed to decode path for %s-%s: %w", a, b, err)
	}
	if flipped {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}
	return search.Result{Path: path, Cost: cost, Found: true}, nil
}

// PairSummary aggregates the stored results of one snapshot.
type PairSummary struct {
	Pairs    int
	MeanCost float64
	MinCost  float64
	MaxCost  float64
}

// Summary returns pair count and cost aggregates for a snapshot. A
// snapshot with no stored pairs yields a zero summary.
func (s *Store) Summary(ctx context.Context, snapshotID string) (PairSummary, error) {
	var count int
	var mean, min, max sql.NullFloat64
	err := s.conn.QueryRowContext(ctx,
		"SELECT COUNT(*), AVG(cost), MIN(cost), MAX(cost) FROM pairs WHERE snapshot_id = ?",
		snapshotID).Scan(&count, &mean, &min, &max)
	if err != nil {
		return PairSummary{}, fmt.Errorf("failed to summarize pairs: %w", err)
	}
	return PairSummary{
		Pairs:    count,
		MeanCost: mean.Float64,
		MinCost:  min.Float64,
		MaxCost:  max.Float64,
	}, nil
}
