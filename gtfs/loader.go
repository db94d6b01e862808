package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Sentinel errors for schema problems. Both abort loading: a graph built
// from a partial schema would be silently wrong.
var (
	// ErrMissingFile indicates a required table file is absent from the feed.
	ErrMissingFile = errors.New("gtfs: required table missing")

	// ErrMissingColumn indicates a table lacks a column the model depends on.
	ErrMissingColumn = errors.New("gtfs: required column missing")
)

// LoadTables reads stops.txt, routes.txt, trips.txt and stop_times.txt
// from path, which may be a directory of unzipped GTFS files or a .zip
// archive. All four tables are required.
func LoadTables(path string) (*Tables, error) {
	if strings.HasSuffix(strings.ToLower(path), ".zip") {
		return loadFromZip(path)
	}
	return loadFromDir(path)
}

func loadFromDir(dir string) (*Tables, error) {
	return loadAll(func(name string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(dir, name))
	})
}

func loadFromZip(path string) (*Tables, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open gtfs zip: %w", err)
	}
	defer zr.Close()

	// Some feeds nest the tables inside a folder within the archive.
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[strings.ToLower(filepath.Base(f.Name))] = f
	}
	return loadAll(func(name string) (io.ReadCloser, error) {
		f, ok := files[name]
		if !ok {
			return nil, os.ErrNotExist
		}
		return f.Open()
	})
}

// loadAll drives the per-table parsers over whatever source open reads from.
func loadAll(open func(name string) (io.ReadCloser, error)) (*Tables, error) {
	var t Tables
	steps := []struct {
		file  string
		parse func(*Tables, io.Reader) error
	}{
		{"stops.txt", parseStops},
		{"routes.txt", parseRoutes},
		{"trips.txt", parseTrips},
		{"stop_times.txt", parseStopTimes},
	}
	for _, s := range steps {
		rc, err := open(s.file)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, s.file)
		}
		err = s.parse(&t, rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.file, err)
		}
	}
	return &t, nil
}

func parseStops(t *Tables, r io.Reader) error {
	rows, idx, err := readTable(r, "stops.txt", "stop_id", "stop_name", "stop_lat", "stop_lon")
	if err != nil {
		return err
	}
	for _, rec := range rows {
		lat, _ := strconv.ParseFloat(idx.field(rec, "stop_lat"), 64)
		lon, _ := strconv.ParseFloat(idx.field(rec, "stop_lon"), 64)
		t.Stops = append(t.Stops, Stop{
			ID:   idx.field(rec, "stop_id"),
			Name: idx.field(rec, "stop_name"),
			Lat:  lat,
			Lon:  lon,
		})
	}
	return nil
}

func parseRoutes(t *Tables, r io.Reader) error {
	rows, idx, err := readTable(r, "routes.txt", "route_id", "route_type")
	if err != nil {
		return err
	}
	for _, rec := range rows {
		rt, _ := strconv.Atoi(idx.field(rec, "route_type"))
		t.Routes = append(t.Routes, Route{
			ID:        idx.field(rec, "route_id"),
			Type:      rt,
			ShortName: idx.field(rec, "route_short_name"),
			Color:     idx.field(rec, "route_color"),
		})
	}
	return nil
}

func parseTrips(t *Tables, r io.Reader) error {
	rows, idx, err := readTable(r, "trips.txt", "trip_id", "route_id")
	if err != nil {
		return err
	}
	for _, rec := range rows {
		t.Trips = append(t.Trips, Trip{
			ID:       idx.field(rec, "trip_id"),
			RouteID:  idx.field(rec, "route_id"),
			Headsign: idx.field(rec, "trip_headsign"),
		})
	}
	return nil
}

func parseStopTimes(t *Tables, r io.Reader) error {
	rows, idx, err := readTable(r, "stop_times.txt", "trip_id", "stop_id", "stop_sequence")
	if err != nil {
		return err
	}
	for _, rec := range rows {
		seq, _ := strconv.Atoi(idx.field(rec, "stop_sequence"))
		t.StopTimes = append(t.StopTimes, StopTime{
			TripID:       idx.field(rec, "trip_id"),
			StopID:       idx.field(rec, "stop_id"),
			StopSequence: seq,
			Arrival:      idx.field(rec, "arrival_time"),
			Departure:    idx.field(rec, "departure_time"),
		})
	}
	return nil
}

// readTable reads a whole CSV table, checks that the required columns are
// present, and returns the data rows with a header index. Ragged rows are
// tolerated; cells a row lacks read as empty.
func readTable(r io.Reader, table string, required ...string) ([][]string, header, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: %s is empty", ErrMissingColumn, table)
	}
	idx := indexHeader(rows[0])
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, nil, fmt.Errorf("%w: %s has no %q column", ErrMissingColumn, table, col)
		}
	}
	return rows[1:], idx, nil
}

// header maps a lower-cased column name to its position in the table.
type header map[string]int

func indexHeader(cols []string) header {
	idx := make(header, len(cols))
	for i, h := range cols {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func (h header) field(record []string, col string) string {
	if i, ok := h[col]; ok && i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}
