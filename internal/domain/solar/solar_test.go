package solar_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/okian/salat/internal/domain/model"
	"github.com/okian/salat/internal/domain/solar"
	. "github.com/smartystreets/goconvey/convey"
)

var erbil = model.Coordinate{Latitude: 36.1911, Longitude: 44.0094}

func TestComputeGeometry(t *testing.T) {
	Convey("Given every day of a leap year", t, func() {
		start := model.CalendarDate{Year: 2024, Month: time.January, Day: 1}

		Convey("Then day of year and declination stay within bounds", func() {
			for i := 0; i < 366; i++ {
				g := solar.ComputeGeometry(start.AddDays(i))
				So(g.DayOfYear, ShouldBeGreaterThan, 0)
				So(g.DayOfYear, ShouldBeLessThanOrEqualTo, 366)
				So(math.Abs(g.Declination), ShouldBeLessThanOrEqualTo, 23.45)
				So(math.Abs(g.EquationOfTime), ShouldBeLessThan, 20)
			}
		})
	})

	Convey("Given the solstices and an equinox", t, func() {
		june := solar.ComputeGeometry(model.CalendarDate{Year: 2025, Month: time.June, Day: 21})
		december := solar.ComputeGeometry(model.CalendarDate{Year: 2025, Month: time.December, Day: 21})
		march := solar.ComputeGeometry(model.CalendarDate{Year: 2025, Month: time.March, Day: 21})

		So(june.Declination, ShouldAlmostEqual, 23.45, 0.1)
		So(december.Declination, ShouldAlmostEqual, -23.45, 0.1)
		So(march.Declination, ShouldAlmostEqual, 0, 1)
		So(march.DayOfYear, ShouldEqual, 80)
	})

	Convey("Given early November", t, func() {
		g := solar.ComputeGeometry(model.CalendarDate{Year: 2025, Month: time.November, Day: 3})

		Convey("Then the sun runs fast by roughly a quarter hour", func() {
			So(g.EquationOfTime, ShouldBeGreaterThan, 15)
		})
	})
}

func TestHourAngle(t *testing.T) {
	Convey("Given the equator at an equinox", t, func() {
		h, err := solar.HourAngle(0, 0)
		So(err, ShouldBeNil)
		So(h, ShouldAlmostEqual, 90, 1e-9)
	})

	Convey("Given a polar latitude in midwinter", t, func() {
		_, err := solar.HourAngle(80, -23.4)
		So(err, ShouldNotBeNil)
		So(errors.Is(err, solar.ErrUndefinedHourAngle), ShouldBeTrue)
	})

	Convey("Given a polar latitude in midsummer", t, func() {
		_, err := solar.HourAngle(-80, -23.4)
		So(errors.Is(err, solar.ErrUndefinedHourAngle), ShouldBeTrue)
	})
}

func TestComputeSunEvents(t *testing.T) {
	Convey("Given Erbil at the March equinox", t, func() {
		date := model.CalendarDate{Year: 2025, Month: time.March, Day: 21}
		r := solar.ComputeSunEvents(solar.ComputeGeometry(date), erbil)

		Convey("Then the events are defined and symmetric around noon", func() {
			So(r.IsFallback(), ShouldBeFalse)
			ev, ok := r.Events()
			So(ok, ShouldBeTrue)
			So(ev.Sunrise, ShouldBeLessThan, ev.SolarNoon)
			So(ev.SolarNoon, ShouldBeLessThan, ev.Sunset)
			So(ev.SolarNoon-ev.Sunrise, ShouldAlmostEqual, ev.Sunset-ev.SolarNoon, 1e-9)
			So(ev.SolarNoon, ShouldAlmostEqual, 12.2, 0.05)
		})

		Convey("And they agree with an independent sunrise library within minutes", func() {
			ev, _ := r.Events()
			rise, set := sunrise.SunriseSunset(erbil.Latitude, erbil.Longitude, date.Year, date.Month, date.Day)
			So(ev.Sunrise, ShouldAlmostEqual, localHours(rise), 0.35)
			So(ev.Sunset, ShouldAlmostEqual, localHours(set), 0.35)
		})
	})

	Convey("Given latitude 80N near the winter solstice", t, func() {
		date := model.CalendarDate{Year: 2025, Month: time.December, Day: 21}
		r := solar.ComputeSunEvents(solar.ComputeGeometry(date), model.Coordinate{Latitude: 80, Longitude: 15})

		Convey("Then the solver signals a fallback", func() {
			So(r.IsFallback(), ShouldBeTrue)
			ev, ok := r.Events()
			So(ok, ShouldBeFalse)
			So(ev, ShouldResemble, solar.SunEvents{})
		})
	})

	Convey("Given a longitude far from the reference meridian", t, func() {
		g := solar.Geometry{DayOfYear: 80}
		r := solar.ComputeSunEvents(g, model.Coordinate{Latitude: 0, Longitude: -135})

		Convey("Then solar noon is left unnormalized", func() {
			ev, ok := r.Events()
			So(ok, ShouldBeTrue)
			So(ev.SolarNoon, ShouldAlmostEqual, 24, 1e-9)
			So(ev.Sunset, ShouldBeGreaterThan, 24)
		})
	})
}

func TestSolarNoon(t *testing.T) {
	Convey("Given no equation of time", t, func() {
		g := solar.Geometry{}
		So(solar.SolarNoon(g, solar.ReferenceMeridian), ShouldEqual, 12)
		So(solar.SolarNoon(g, solar.ReferenceMeridian+15), ShouldAlmostEqual, 11, 1e-12)
	})
}

func TestLocalZone(t *testing.T) {
	Convey("Given the reference meridian", t, func() {
		name, offset := time.Date(2025, 1, 1, 0, 0, 0, 0, solar.LocalZone()).Zone()
		So(offset, ShouldEqual, 3*3600)
		So(name, ShouldEqual, "UTC+3")
	})
}

func localHours(t time.Time) float64 {
	l := t.In(solar.LocalZone())
	return float64(l.Hour()) + float64(l.Minute())/60 + float64(l.Second())/3600
}
