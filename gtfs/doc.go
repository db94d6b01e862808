/*
Package gtfs loads the static timetable tables a transit network model is
built from.

The package is deliberately small: it reads the four tables that matter for
network topology (stops, routes, trips, stop_times) from an unzipped GTFS
directory or a .zip archive, and hands them to callers as plain record
slices. It does not interpret calendars, fares, frequencies, or shapes.

# Basic Usage

	tables, err := gtfs.LoadTables("data/hvv")       // directory with *.txt
	tables, err := gtfs.LoadTables("data/hvv.zip")   // or the zip itself

# Schema Checking

A missing table or a missing required column is a hard error (wrapped
ErrMissingFile / ErrMissingColumn): a network assembled from a partial
schema would be silently wrong, so loading refuses instead. Optional
columns and malformed cell values degrade to zero values; in particular
stop_times rows without usable timestamps are kept, since many feeds only
carry timepoints at major stops.

# Service-Day Times

GTFS timestamps are HH:MM:SS strings on the service day, so hours past
23 are legal ("24:02:00" is 00:02 the next morning). ParseTime converts
them to seconds past midnight and parses anything unusable to 0.
*/
package gtfs
