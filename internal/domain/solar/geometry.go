// Package solar derives approximate solar geometry and sun events
// (solar noon, sunrise, sunset) for a date and coordinate.
//
// The formulas are the usual low-order harmonic approximations. They are good
// to a few minutes at mid latitudes and are not meant as an ephemeris.
package solar

import (
	"math"

	"github.com/okian/salat/internal/domain/model"
)

// Harmonic approximation constants.
const (
	daysPerYear         = 365.0
	equinoxDayOffset    = 81.0
	declinationDayShift = 284.0
	maxDeclination      = 23.45

	eotSin2BCoeff = 9.87
	eotCosBCoeff  = 7.53
	eotSinBCoeff  = 1.5
)

// Geometry is the solar geometry of one calendar day.
type Geometry struct {
	DayOfYear      int     // 1..366
	EquationOfTime float64 // minutes
	Declination    float64 // degrees, within ±23.45
}

// ComputeGeometry returns the equation of time and solar declination for date.
func ComputeGeometry(date model.CalendarDate) Geometry {
	doy := date.DayOfYear()
	n := float64(doy)

	b := 2 * math.Pi * (n - equinoxDayOffset) / daysPerYear
	eot := eotSin2BCoeff*math.Sin(2*b) - eotCosBCoeff*math.Cos(b) - eotSinBCoeff*math.Sin(b)
	dec := maxDeclination * math.Sin(2*math.Pi*(declinationDayShift+n)/daysPerYear)

	return Geometry{
		DayOfYear:      doy,
		EquationOfTime: eot,
		Declination:    dec,
	}
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }
