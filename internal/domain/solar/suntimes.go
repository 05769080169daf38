package solar

import (
	"fmt"
	"math"
	"time"

	"github.com/okian/salat/internal/domain/model"
)

// ReferenceMeridian is the standard meridian, in degrees east, that local
// clock times are expressed against: a fixed approximation for the served
// region (UTC+3), not a timezone lookup.
const ReferenceMeridian = 45.0

const (
	minutesPerDegree = 4.0
	degreesPerHour   = 15.0
	minutesPerHour   = 60.0
	noonHours        = 12.0
)

// SunEvents holds solar noon, sunrise and sunset as fractional hours of the
// local (reference meridian) day. Values are not normalized and may fall
// outside [0, 24) for coordinates far from the reference meridian.
type SunEvents struct {
	SolarNoon float64
	Sunrise   float64
	Sunset    float64
}

// Result is either computed SunEvents or a fallback signal for days on which
// the sun never crosses the horizon.
type Result struct {
	events   SunEvents
	fallback bool
}

// Computed wraps defined sun events.
func Computed(e SunEvents) Result { return Result{events: e} }

// Fallback signals that no sun events exist for the day.
func Fallback() Result { return Result{fallback: true} }

// IsFallback reports whether r carries no sun events.
func (r Result) IsFallback() bool { return r.fallback }

// Events returns the sun events and true, or zero events and false for a
// fallback result.
func (r Result) Events() (SunEvents, bool) {
	if r.fallback {
		return SunEvents{}, false
	}
	return r.events, true
}

// SolarNoon returns the local solar noon in fractional hours for the geometry
// and longitude.
func SolarNoon(g Geometry, longitude float64) float64 {
	correction := g.EquationOfTime + minutesPerDegree*(longitude-ReferenceMeridian)
	return noonHours - correction/minutesPerHour
}

// HourAngle returns the sunrise hour angle in degrees for a latitude and
// declination. It fails with ErrUndefinedHourAngle when |tan(lat)·tan(dec)| > 1.
func HourAngle(latitude, declination float64) (float64, error) {
	cosH := -math.Tan(degToRad(latitude)) * math.Tan(degToRad(declination))
	if math.IsNaN(cosH) || cosH < -1 || cosH > 1 {
		return 0, fmt.Errorf("%w: cos(H)=%g at latitude %g, declination %g",
			ErrUndefinedHourAngle, cosH, latitude, declination)
	}
	return radToDeg(math.Acos(cosH)), nil
}

// ComputeSunEvents derives solar noon, sunrise and sunset. When the hour
// angle is undefined the result is Fallback().
func ComputeSunEvents(g Geometry, c model.Coordinate) Result {
	noon := SolarNoon(g, c.Longitude)
	h, err := HourAngle(c.Latitude, g.Declination)
	if err != nil {
		return Fallback()
	}
	half := h / degreesPerHour
	return Computed(SunEvents{
		SolarNoon: noon,
		Sunrise:   noon - half,
		Sunset:    noon + half,
	})
}

// LocalZone is the fixed clock zone implied by ReferenceMeridian.
func LocalZone() *time.Location {
	offset := int(ReferenceMeridian / degreesPerHour * 3600)
	return time.FixedZone(fmt.Sprintf("UTC%+d", offset/3600), offset)
}
