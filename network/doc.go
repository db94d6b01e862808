/*
Package network builds an undirected station graph from GTFS timetable
tables and assigns edge weights under interchangeable cost models.

Stops sharing a trimmed stop_name are merged into a single Node whose
coordinates are the arithmetic mean over the merged platforms. Edges come
from consecutive stops within each trip and accumulate the routes, route
types and observed travel times of every trip that traverses the segment.

# Basic Usage

Assemble a graph from loaded tables:

	tables, err := gtfs.LoadTables("hvv.zip")
	if err != nil {
	    log.Fatal(err)
	}

	// Keep only U-Bahn (402) and S-Bahn (109) routes
	g := network.Assemble(tables, network.AssembleOptions{
	    RouteTypes: []int{402, 109},
	})

	// Weight edges before running weighted searches
	if err := g.ApplyWeights(network.WeightTravelTime); err != nil {
	    log.Fatal(err)
	}

# Determinism

Assembly is deterministic for a given set of tables regardless of row
order: trips are processed in sorted trip_id order and each trip's stops
in stop_sequence order. Neighbor iteration follows edge insertion order,
so a traversal visits neighbors in the same order on every run.

# Weighting

ApplyWeights recomputes every edge weight from stored edge and node
attributes only, so applying the same model twice yields identical
weights. WeightGeographic is the haversine distance in kilometers between
the endpoint coordinates; WeightTravelTime is the minimum observed travel
time in seconds, or DefaultTravelTimeSec for an edge with no samples.

# Snapshots

A built graph can be serialized with gob for disk caching, avoiding a
re-parse of the feed on every run:

	data, _ := network.SerializeGraph(g)
	os.WriteFile("graph.gob", data, 0644)

	g2, err := network.DeserializeGraph(data)
*/
package network
