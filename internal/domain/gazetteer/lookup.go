package gazetteer

import (
	"math"

	"github.com/okian/salat/internal/domain/model"
)

// LookupCity returns the first city, Kurdish table first, whose latitude and
// longitude are both strictly within tolerance of c.
func LookupCity(c model.Coordinate, tolerance float64) (City, bool) {
	for _, lang := range languages {
		for _, city := range cities[lang] {
			if math.Abs(city.Latitude-c.Latitude) < tolerance &&
				math.Abs(city.Longitude-c.Longitude) < tolerance {
				return city, true
			}
		}
	}
	return City{}, false
}

// LookupPlaceName returns the native name of the city near c or UnknownPlace.
func LookupPlaceName(c model.Coordinate, tolerance float64) string {
	if city, ok := LookupCity(c, tolerance); ok {
		return city.Name
	}
	return UnknownPlace
}
