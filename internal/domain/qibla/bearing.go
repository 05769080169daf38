// Package qibla computes the direction of the Kaaba from any point on Earth.
package qibla

import (
	"math"

	"github.com/okian/salat/internal/domain/model"
	"gonum.org/v1/gonum/floats/scalar"
)

// Kaaba location in degrees.
const (
	KaabaLatitude  = 21.4225
	KaabaLongitude = 39.8262
)

const fullCircle = 360.0

// Kaaba is the bearing target as a coordinate.
var Kaaba = model.Coordinate{Latitude: KaabaLatitude, Longitude: KaabaLongitude}

// Bearing returns the initial great-circle bearing from c to the Kaaba in
// degrees clockwise from true north, within [0, 360) and rounded to one
// decimal place. At the Kaaba itself the bearing is 0.
func Bearing(c model.Coordinate) float64 {
	lat1 := toRadians(c.Latitude)
	lat2 := toRadians(KaabaLatitude)
	dLon := toRadians(KaabaLongitude - c.Longitude)

	y := math.Sin(dLon) * math.Cos(lat2)
	// Explicit conversions keep each product rounded separately; a fused
	// multiply-add shifts results that sit on a rounding boundary.
	x := float64(math.Cos(lat1)*math.Sin(lat2)) - float64(math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon))

	b := scalar.Round(normalize(toDegrees(math.Atan2(y, x))), 1)
	if b >= fullCircle {
		return 0
	}
	return b
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, fullCircle)
	if deg < 0 {
		deg += fullCircle
	}
	return deg
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }
