package transit

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// Coordinate represents a geographic coordinate in degrees
type Coordinate struct {
	Lat float64
	Lng float64
}

// Validate returns ErrInvalidCoordinate when the coordinate is not finite or out of range
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return errors.Wrapf(ErrInvalidCoordinate, "non-finite coordinate (%v, %v)", c.Lat, c.Lng)
	}

	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return errors.Wrapf(ErrInvalidCoordinate, "coordinate (%v, %v) out of range", c.Lat, c.Lng)
	}

	return nil
}

// point converts to orb's [lng, lat] ordering
func (c Coordinate) point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// Distance returns the great-circle surface distance between two coordinates in meters.
func Distance(from, to Coordinate) (float64, error) {
	if err := from.Validate(); err != nil {
		return 0, err
	}
	if err := to.Validate(); err != nil {
		return 0, err
	}

	return distanceMeters(from, to), nil
}

// distanceMeters skips validation; callers pass coordinates that already passed Validate.
func distanceMeters(from, to Coordinate) float64 {
	return geo.DistanceHaversine(from.point(), to.point())
}
