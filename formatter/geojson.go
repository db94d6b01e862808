package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/transit-graph/network"
)

// FeatureCollection is the top-level GeoJSON container.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is one GeoJSON feature with free-form properties.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Geometry holds a Point ([lon, lat]) or a LineString ([][lon, lat]).
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// BuildFeatureCollection maps a graph to GeoJSON: stations become Point
// features at their mean coordinates, connections become two-point
// LineString features. Coordinates follow the GeoJSON axis order,
// longitude first. Weight and unit properties appear only on weighted
// graphs.
func BuildFeatureCollection(g *network.Graph) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}

	for _, n := range g.Nodes() {
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: [2]float64{n.Lon, n.Lat},
			},
			Properties: map[string]any{
				"id":       n.ID,
				"stop_ids": append([]string(nil), n.StopIDs...),
				"transfer": n.Transfer,
				"degree":   g.Degree(n.ID),
			},
		})
	}

	unit := g.Weighting().Unit()
	for _, e := range sortedEdges(g) {
		u, _ := g.Node(e.U)
		v, _ := g.Node(e.V)
		props := map[string]any{
			"from":   e.U,
			"to":     e.V,
			"routes": e.RouteIDs(),
		}
		if g.Weighted() {
			props["weight"] = e.Weight
			props["unit"] = unit
		}
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type: "LineString",
				Coordinates: [][2]float64{
					{u.Lon, u.Lat},
					{v.Lon, v.Lat},
				},
			},
			Properties: props,
		})
	}

	return fc
}

// GraphGeoJSON encodes g as an indented GeoJSON FeatureCollection.
func GraphGeoJSON(g *network.Graph) ([]byte, error) {
	return json.MarshalIndent(BuildFeatureCollection(g), "", "  ")
}
