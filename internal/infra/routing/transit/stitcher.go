package transit

import (
	"github.com/pkg/errors"
)

// StitchRoute joins shortest paths between consecutive waypoints into one trip.
// Each junction station appears once. The first failing leg aborts the remaining legs.
func StitchRoute(graph *Graph, waypoints []string) ([]string, float64, error) {
	if len(waypoints) < 2 {
		return nil, 0, errors.Wrapf(ErrTooFewWaypoints, "got %d", len(waypoints))
	}

	var trip []string
	total := 0.0
	for leg := range len(waypoints) - 1 {
		path, weight, err := FindPath(graph, waypoints[leg], waypoints[leg+1])
		if err != nil {
			return nil, 0, errors.WithMessagef(err, "leg %d", leg+1)
		}

		if leg > 0 {
			path = path[1:]
		}
		trip = append(trip, path...)
		total += weight
	}

	return trip, total, nil
}
