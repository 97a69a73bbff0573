package transit

import (
	"math"

	"github.com/pkg/errors"
)

// NearestResult is the outcome of a nearest-station search
type NearestResult struct {
	Station  Station
	Distance float64 // meters from the query coordinate
}

// Nearest scans every station and returns the one closest to coord.
// Equal distances resolve to the station with the lowest index.
func (g *Graph) Nearest(coord Coordinate) (*NearestResult, error) {
	if err := coord.Validate(); err != nil {
		return nil, err
	}

	if len(g.stations) == 0 {
		return nil, errors.WithStack(ErrNoStations)
	}

	bestIdx := 0
	bestDistance := math.Inf(1)
	for idx, station := range g.stations {
		distance := distanceMeters(coord, station.Location)
		if distance < bestDistance {
			bestDistance = distance
			bestIdx = idx
		}
	}

	return &NearestResult{
		Station:  g.stations[bestIdx],
		Distance: bestDistance,
	}, nil
}
