// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// It covers the feed locations with their route-type filters, graph
// assembly defaults, the query server, and the precomputed-results store.
// Multiple feeds may be configured and selected by name.
package config
