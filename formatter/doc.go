// Package formatter provides display encodings for station graphs and
// search results.
//
// This package is organized into:
// - json.go: plain JSON documents (graph, search result, stats)
// - geojson.go: GeoJSON FeatureCollection for map display
// - dot.go: Graphviz DOT text for rendering
// - render.go: DOT to SVG or PNG via the embedded Graphviz engine
// - routes.go: route display helpers (colors, names, path legs)
//
// Every encoding emits nodes sorted by ID and edges sorted by endpoint
// pair, so output bytes are stable across runs for the same graph.
package formatter
