package gtfs

import (
	"strconv"
	"strings"
)

// SecondsPerDay is the length of a GTFS service day.
const SecondsPerDay = 24 * 60 * 60

// ParseTime converts an HH:MM:SS service-day timestamp into seconds since
// the start of the service day. Hours past 23 are valid and keep counting
// ("24:02:00" is 86520), which is how feeds express after-midnight service
// on the previous day's schedule. Empty or malformed values return 0.
func ParseTime(ts string) int {
	parts := strings.Split(strings.TrimSpace(ts), ":")
	if len(parts) != 3 {
		return 0
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}
	s, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return 0
	}
	return h*3600 + m*60 + s
}

// FormatTime renders seconds-of-service-day back into HH:MM:SS. Values past
// the end of the day keep their rolled-over hour ("24:02:00"), mirroring
// ParseTime.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return pad2(h) + ":" + pad2(m) + ":" + pad2(s)
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
