package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/transit-graph/network"
)

// SnapshotInfo describes one stored graph.
type SnapshotInfo struct {
	ID        string
	BuiltAt   time.Time
	Weighting network.WeightModel
	Nodes     int
	Edges     int
}

// SaveGraph persists g as a new snapshot in one transaction and returns
// the snapshot ID.
func (s *Store) SaveGraph(ctx context.Context, g *network.Graph) (string, error) {
	snapshotID := uuid.New().String()
	builtAt := time.Now().UTC().Format(time.RFC3339)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO snapshots (snapshot_id, built_at_utc, weighting, node_count, edge_count) VALUES (?, ?, ?, ?, ?)",
		snapshotID, builtAt, string(g.Weighting()), g.NumNodes(), g.NumEdges(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO nodes (snapshot_id, node_id, lat, lon, stop_ids, transfer) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return "", fmt.Errorf("failed to prepare node insert: %w", err)
	}
	defer nodeStmt.Close()

	for _, n := range g.Nodes() {
		stopIDs, _ := json.Marshal(n.StopIDs)
		if _, err := nodeStmt.ExecContext(ctx, snapshotID, n.ID, n.Lat, n.Lon, string(stopIDs), n.Transfer); err != nil {
			return "", fmt.Errorf("failed to insert node %s: %w", n.ID, err)
		}
	}

	edgeStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO edges (snapshot_id, ord, u, v, routes, route_types, samples, weight) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return "", fmt.Errorf("failed to prepare edge insert: %w", err)
	}
	defer edgeStmt.Close()

	for i, e := range g.Edges() {
		routes, _ := json.Marshal(e.Routes)
		types, _ := json.Marshal(e.RouteTypes)
		samples, _ := json.Marshal(e.Samples)
		if _, err := edgeStmt.ExecContext(ctx, snapshotID, i, e.U, e.V, string(routes), string(types), string(samples), e.Weight); err != nil {
			return "", fmt.Errorf("failed to insert edge %s-%s: %w", e.U, e.V, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return snapshotID, nil
}

// LoadGraph restores the snapshot with the given ID.
func (s *Store) LoadGraph(ctx context.Context, snapshotID string) (*network.Graph, error) {
	var weighting string
	err := s.conn.QueryRowContext(ctx,
		"SELECT weighting FROM snapshots WHERE snapshot_id = ?", snapshotID).Scan(&weighting)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: snapshot %s", ErrNotFound, snapshotID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	nodes, err := s.loadNodes(ctx, snapshotID)
	if err != nil {
		return nil, err
	}
	edges, err := s.loadEdges(ctx, snapshotID)
	if err != nil {
		return nil, err
	}
	return network.Restore(nodes, edges, network.WeightModel(weighting)), nil
}

func (s *Store) loadNodes(ctx context.Context, snapshotID string) ([]network.Node, error) {
	rows, err := s.conn.QueryContext(ctx,
		"SELECT node_id, lat, lon, stop_ids, transfer FROM nodes WHERE snapshot_id = ? ORDER BY node_id", snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to read nodes: %w", err)
	}
	defer rows.Close()

	var nodes []network.Node
	for rows.Next() {
		var n network.Node
		var stopIDs string
		if err := rows.Scan(&n.ID, &n.Lat, &n.Lon, &stopIDs, &n.Transfer); err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		if err := json.Unmarshal([]byte(stopIDs), &n.StopIDs); err != nil {
			return nil, fmt.Errorf("failed to decode stop_ids for %s: %w", n.ID, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, rows.Err()
}

func (s *Store) loadEdges(ctx context.Context, snapshotID string) ([]network.Edge, error) {
	rows, err := s.conn.QueryContext(ctx,
		"SELECT u, v, routes, route_types, samples, weight FROM edges WHERE snapshot_id = ? ORDER BY ord", snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to read edges: %w", err)
	}
	defer rows.Close()

	var edges []network.Edge
	for rows.Next() {
		var e network.Edge
		var routes, types, samples string
		if err := rows.Scan(&e.U, &e.V, &routes, &types, &samples, &e.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		if err := json.Unmarshal([]byte(routes), &e.Routes); err != nil {
			return nil, fmt.Errorf("failed to decode routes for %s-%s: %w", e.U, e.V, err)
		}
		if err := json.Unmarshal([]byte(types), &e.RouteTypes); err != nil {
			return nil, fmt.Errorf("failed to decode route_types for %s-%s: %w", e.U, e.V, err)
		}
		if err := json.Unmarshal([]byte(samples), &e.Samples); err != nil {
			return nil, fmt.Errorf("failed to decode samples for %s-%s: %w", e.U, e.V, err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// LatestSnapshot returns the most recently written snapshot.
func (s *Store) LatestSnapshot(ctx context.Context) (SnapshotInfo, error) {
	row := s.conn.QueryRowContext(ctx,
		"SELECT snapshot_id, built_at_utc, weighting, node_count, edge_count FROM snapshots ORDER BY built_at_utc DESC, rowid DESC LIMIT 1")
	info, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SnapshotInfo{}, fmt.Errorf("%w: no snapshots", ErrNotFound)
	}
	return info, err
}

// Snapshots lists all stored snapshots, most recent first.
func (s *Store) Snapshots(ctx context.Context) ([]SnapshotInfo, error) {
	rows, err := s.conn.QueryContext(ctx,
		"SELECT snapshot_id, built_at_utc, weighting, node_count, edge_count FROM snapshots ORDER BY built_at_utc DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var infos []SnapshotInfo
	for rows.Next() {
		info, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (SnapshotInfo, error) {
	var info SnapshotInfo
	var builtAt, weighting string
	if err := row.Scan(&info.ID, &builtAt, &weighting, &info.Nodes, &info.Edges); err != nil {
		return SnapshotInfo{}, err
	}
	t, err := time.Parse(time.RFC3339, builtAt)
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("failed to parse built_at for %s: %w", info.ID, err)
	}
	info.BuiltAt = t
	info.Weighting = network.WeightModel(weighting)
	return info, nil
}

// Prune deletes all but the keep most recent snapshots and returns how
// many were removed. Node, edge and pair rows cascade.
func (s *Store) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 1 {
		keep = 1
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	res, err := s.conn.ExecContext(ctx, `
		DELETE FROM snapshots WHERE snapshot_id NOT IN (
			SELECT snapshot_id FROM snapshots ORDER BY built_at_utc DESC, rowid DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
