package gtfs

// Tables holds the four timetable tables the network model is built from.
type Tables struct {
	Stops     []Stop
	Routes    []Route
	Trips     []Trip
	StopTimes []StopTime
}

// Stop is one row of stops.txt: a single physical stop or platform.
type Stop struct {
	ID   string
	Name string
	Lat  float64
	Lon  float64
}

// Route is one row of routes.txt.
type Route struct {
	ID        string
	Type      int // GTFS route_type; feeds may use extended codes (402 = U-Bahn etc.)
	ShortName string
	Color     string
}

// Trip is one row of trips.txt.
type Trip struct {
	ID       string
	RouteID  string
	Headsign string
}

// StopTime is one row of stop_times.txt. Arrival and Departure keep the
// raw HH:MM:SS service-day strings; use ParseTime to get seconds.
type StopTime struct {
	TripID       string
	StopID       string
	StopSequence int
	Arrival      string
	Departure    string
}
