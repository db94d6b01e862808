package cli

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transit-graph/network"
)

// formatDuration renders seconds in the most readable unit.
func formatDuration(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.1f sec", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%.1f min", seconds/60)
	default:
		s := int(seconds)
		return fmt.Sprintf("%d h %d min", s/3600, s%3600/60)
	}
}

// formatDistance renders kilometers, switching to meters under one km.
func formatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%.0f m", km*1000)
	}
	return fmt.Sprintf("%.2f km", km)
}

// formatCost renders a path cost in the unit of the weight model. Without
// a model the cost is a hop count.
func formatCost(value float64, model network.WeightModel) string {
	switch model {
	case network.WeightGeographic:
		return formatDistance(value)
	case network.WeightTravelTime:
		return formatDuration(value)
	}
	return fmt.Sprintf("%.0f hops", value)
}
