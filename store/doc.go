// Package store persists built station graphs and precomputed all-pairs
// results in SQLite.
//
// One database holds any number of snapshots. Each snapshot is a full
// graph (nodes, edges, weighting) written in a single transaction, and
// may carry precomputed shortest paths keyed by station pair. The
// database runs in WAL mode on a single connection; writes additionally
// serialize on a mutex so concurrent callers cannot nest transactions.
package store
