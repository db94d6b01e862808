/*
Package server exposes an assembled station graph over HTTP.

Organization:

  - server.go: Server type, router construction, lifecycle
  - handlers.go: JSON endpoint handlers and response shapes
  - nearest.go: S2 cell index behind the nearest-node endpoint
  - cache.go: LRU response cache for query endpoints

The graph is treated as immutable for the lifetime of the server, which
is what makes response caching and the lock-free nearest-node index
safe. A server backed by a store answers weighted path queries from
precomputed results and falls back to a live search when a pair has no
stored row.
*/
package server
