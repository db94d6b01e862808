package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transit-graph/gtfs"
	"github.com/theoremus-urban-solutions/transit-graph/network"
)

// lineTables builds a feed with one U-Bahn trip A-B-C and one S-Bahn trip
// C-D, with a five minute dwell at A.
func lineTables() *gtfs.Tables {
	return &gtfs.Tables{
		Stops: []gtfs.Stop{
			{ID: "1", Name: "A", Lat: 0, Lon: 0},
			{ID: "2", Name: "B", Lat: 0, Lon: 1},
			{ID: "3", Name: "C", Lat: 0, Lon: 2},
			{ID: "4", Name: "D", Lat: 0, Lon: 3},
		},
		Routes: []gtfs.Route{
			{ID: "U1", Type: 402},
			{ID: "S1", Type: 109},
		},
		Trips: []gtfs.Trip{
			{ID: "T1", RouteID: "U1"},
			{ID: "T2", RouteID: "S1"},
		},
		StopTimes: []gtfs.StopTime{
			{TripID: "T1", StopID: "1", StopSequence: 1, Arrival: "08:00:00", Departure: "08:05:00"},
			{TripID: "T1", StopID: "2", StopSequence: 2, Arrival: "08:05:00", Departure: "08:05:00"},
			{TripID: "T1", StopID: "3", StopSequence: 3, Arrival: "08:09:00", Departure: "08:09:00"},
			{TripID: "T2", StopID: "3", StopSequence: 1, Arrival: "09:00:00", Departure: "09:00:00"},
			{TripID: "T2", StopID: "4", StopSequence: 2, Arrival: "09:04:00", Departure: "09:04:00"},
		},
	}
}

func TestAssembleLine(t *testing.T) {
	g := network.Assemble(lineTables(), network.AssembleOptions{})

	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.NodeIDs())

	ab, ok := g.Edge("A", "B")
	require.True(t, ok)
	assert.Equal(t, []string{"U1"}, ab.Routes)
	assert.Equal(t, []int{402}, ab.RouteTypes)
	// B is reached the moment A's dwell ends.
	assert.Equal(t, []int{0}, ab.Samples)

	bc, ok := g.Edge("B", "C")
	require.True(t, ok)
	assert.Equal(t, []int{240}, bc.Samples)

	cd, ok := g.Edge("C", "D")
	require.True(t, ok)
	assert.Equal(t, []string{"S1"}, cd.Routes)
	assert.Equal(t, []int{240}, cd.Samples)

	// Edge lookup works in either orientation.
	ba, ok := g.Edge("B", "A")
	require.True(t, ok)
	assert.Same(t, ab, ba)
}

func TestAssembleRouteTypeFilter(t *testing.T) {
	g := network.Assemble(lineTables(), network.AssembleOptions{RouteTypes: []int{402}})

	// The S-Bahn trip and with it stop D are gone.
	assert.Equal(t, []string{"A", "B", "C"}, g.NodeIDs())
	assert.Equal(t, 2, g.NumEdges())
	_, ok := g.Edge("C", "D")
	assert.False(t, ok)
}

func TestAssembleAccumulatesOntoOneEdge(t *testing.T) {
	tables := lineTables()
	// A second U-Bahn line traverses B-A, the reverse direction.
	tables.Routes = append(tables.Routes, gtfs.Route{ID: "U3", Type: 402})
	tables.Trips = append(tables.Trips, gtfs.Trip{ID: "T3", RouteID: "U3"})
	tables.StopTimes = append(tables.StopTimes,
		gtfs.StopTime{TripID: "T3", StopID: "2", StopSequence: 1, Arrival: "10:00:00", Departure: "10:00:00"},
		gtfs.StopTime{TripID: "T3", StopID: "1", StopSequence: 2, Arrival: "10:02:00", Departure: "10:02:00"},
	)

	g := network.Assemble(tables, network.AssembleOptions{})

	// Both directions land on the same undirected edge.
	assert.Equal(t, 3, g.NumEdges())
	ab, ok := g.Edge("A", "B")
	require.True(t, ok)
	assert.Equal(t, []string{"U1", "U3"}, ab.Routes)
	assert.Equal(t, []int{402}, ab.RouteTypes)
	assert.Equal(t, []int{0, 120}, ab.Samples)
}

func TestAssembleSkipsCollapsedPairs(t *testing.T) {
	tables := lineTables()
	// Two platforms of the same station, visited consecutively.
	tables.Stops[1].Name = "A"

	g := network.Assemble(tables, network.AssembleOptions{})

	a, ok := g.Node("A")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, a.StopIDs)
	assert.True(t, a.Transfer)

	// No self-loop: the only T1 edge is A-C.
	_, ok = g.Edge("A", "A")
	assert.False(t, ok)
	ac, ok := g.Edge("A", "C")
	require.True(t, ok)
	assert.Equal(t, []int{240}, ac.Samples)
}

func TestAssembleBridgesUnresolvableStops(t *testing.T) {
	tables := lineTables()
	// Stop 2 loses its record; the trip continues across the gap.
	tables.Stops = append(tables.Stops[:1], tables.Stops[2:]...)

	g := network.Assemble(tables, network.AssembleOptions{})

	_, ok := g.Edge("A", "B")
	assert.False(t, ok)
	ac, ok := g.Edge("A", "C")
	require.True(t, ok)
	// arrival(C) - departure(A) across the bridged gap.
	assert.Equal(t, []int{240}, ac.Samples)
}

func TestAssembleNamelessStopStaysIsolated(t *testing.T) {
	tables := lineTables()
	tables.Stops[1].Name = "   "

	g := network.Assemble(tables, network.AssembleOptions{})

	// The nameless platform becomes the "" node but takes part in no trip.
	require.True(t, g.HasNode(""))
	assert.Equal(t, 0, g.Degree(""))
	_, ok := g.Edge("A", "C")
	assert.True(t, ok)
}

func TestAssembleMidnightRollover(t *testing.T) {
	tables := &gtfs.Tables{
		Stops: []gtfs.Stop{
			{ID: "1", Name: "X", Lat: 0, Lon: 0},
			{ID: "2", Name: "Y", Lat: 0, Lon: 1},
			{ID: "3", Name: "Z", Lat: 0, Lon: 2},
		},
		Routes: []gtfs.Route{{ID: "N1", Type: 3}},
		Trips:  []gtfs.Trip{{ID: "T1", RouteID: "N1"}},
		StopTimes: []gtfs.StopTime{
			// Y is reached via the service-day encoding, Z via a wrapped
			// next-day clock time.
			{TripID: "T1", StopID: "1", StopSequence: 1, Arrival: "23:58:00", Departure: "23:58:00"},
			{TripID: "T1", StopID: "2", StopSequence: 2, Arrival: "24:02:00", Departure: "23:58:00"},
			{TripID: "T1", StopID: "3", StopSequence: 3, Arrival: "00:02:00", Departure: "00:02:00"},
		},
	}

	g := network.Assemble(tables, network.AssembleOptions{})

	xy, ok := g.Edge("X", "Y")
	require.True(t, ok)
	assert.Equal(t, []int{240}, xy.Samples)

	yz, ok := g.Edge("Y", "Z")
	require.True(t, ok)
	assert.Equal(t, []int{240}, yz.Samples)
}

func TestAssembleDropsTripsOnUnknownRoutes(t *testing.T) {
	tables := lineTables()
	tables.Trips[1].RouteID = "GHOST"

	g := network.Assemble(tables, network.AssembleOptions{})

	// T2 is gone entirely, so stop D is unused and never becomes a node.
	assert.Equal(t, []string{"A", "B", "C"}, g.NodeIDs())
	assert.False(t, g.HasNode("D"))
}

func TestAssembleSingleStopTripKeepsNode(t *testing.T) {
	tables := lineTables()
	tables.Routes = append(tables.Routes, gtfs.Route{ID: "B7", Type: 3})
	tables.Trips = append(tables.Trips, gtfs.Trip{ID: "T9", RouteID: "B7"})
	tables.Stops = append(tables.Stops, gtfs.Stop{ID: "9", Name: "Depot", Lat: 1, Lon: 1})
	tables.StopTimes = append(tables.StopTimes,
		gtfs.StopTime{TripID: "T9", StopID: "9", StopSequence: 1, Arrival: "07:00:00", Departure: "07:00:00"})

	g := network.Assemble(tables, network.AssembleOptions{})

	// A used stop becomes a node even when its trip creates no edges.
	require.True(t, g.HasNode("Depot"))
	assert.Equal(t, 0, g.Degree("Depot"))
}

func TestAssembleSortsStopTimesWithinTrip(t *testing.T) {
	tables := lineTables()
	// Shuffle T1's rows; stop_sequence still defines the order.
	tables.StopTimes[0], tables.StopTimes[2] = tables.StopTimes[2], tables.StopTimes[0]

	g := network.Assemble(tables, network.AssembleOptions{})

	_, ok := g.Edge("A", "B")
	assert.True(t, ok)
	_, ok = g.Edge("B", "C")
	assert.True(t, ok)
	_, ok = g.Edge("A", "C")
	assert.False(t, ok)
}

func TestAssembleDeterministicAcrossRowOrder(t *testing.T) {
	a := network.Assemble(lineTables(), network.AssembleOptions{})

	shuffled := lineTables()
	shuffled.Trips[0], shuffled.Trips[1] = shuffled.Trips[1], shuffled.Trips[0]
	shuffled.StopTimes[3], shuffled.StopTimes[0] = shuffled.StopTimes[0], shuffled.StopTimes[3]
	b := network.Assemble(shuffled, network.AssembleOptions{})

	require.Equal(t, a.NumEdges(), b.NumEdges())
	ea, eb := a.Edges(), b.Edges()
	for i := range ea {
		assert.Equal(t, ea[i].U, eb[i].U)
		assert.Equal(t, ea[i].V, eb[i].V)
		assert.Equal(t, ea[i].Samples, eb[i].Samples)
	}

	// Neighbor iteration order is part of the deterministic surface.
	for _, id := range a.NodeIDs() {
		na, nb := a.Neighbors(id), b.Neighbors(id)
		require.Equal(t, len(na), len(nb))
		for i := range na {
			assert.Equal(t, na[i].Other(id), nb[i].Other(id))
		}
	}
}

func TestAssembleEmptyTables(t *testing.T) {
	g := network.Assemble(&gtfs.Tables{}, network.AssembleOptions{})
	assert.Equal(t, 0, g.NumNodes())
	assert.Equal(t, 0, g.NumEdges())
}
