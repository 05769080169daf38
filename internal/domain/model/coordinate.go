// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"math"
)

// Coordinate bounds in degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Coordinate is a geographic position in decimal degrees.
// The calculators accept any finite value; Validate is for callers that
// receive coordinates from the outside.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Validate reports whether the coordinate is finite and inside the usual
// latitude/longitude ranges.
func (c Coordinate) Validate() error {
	switch {
	case math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0):
		return fmt.Errorf("%w: latitude must be finite", ErrInvalidCoordinate)
	case math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0):
		return fmt.Errorf("%w: longitude must be finite", ErrInvalidCoordinate)
	case c.Latitude < MinLatitude || c.Latitude > MaxLatitude:
		return fmt.Errorf("%w: latitude %g outside [-90, 90]", ErrInvalidCoordinate, c.Latitude)
	case c.Longitude < MinLongitude || c.Longitude > MaxLongitude:
		return fmt.Errorf("%w: longitude %g outside [-180, 180]", ErrInvalidCoordinate, c.Longitude)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}
