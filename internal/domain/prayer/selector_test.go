package prayer_test

import (
	"testing"
	"time"

	"github.com/okian/salat/internal/domain/model"
	"github.com/okian/salat/internal/domain/prayer"
	"github.com/okian/salat/internal/domain/solar"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSelectCurrent(t *testing.T) {
	Convey("Given the Erbil schedule", t, func() {
		s := buildFor(erbil, model.CalendarDate{Year: 2025, Month: time.June, Day: 15})
		maghrib := instant(s, prayer.Maghrib).Time
		isha := instant(s, prayer.Isha).Time

		Convey("When now is between maghrib and isha", func() {
			So(prayer.SelectCurrent(s, maghrib+60), ShouldEqual, prayer.Isha)
		})

		Convey("When isha has passed", func() {
			So(prayer.SelectCurrent(s, isha+60), ShouldEqual, prayer.Fajr)
			So(prayer.SelectCurrent(s, prayer.NewTimeOfDay(23, 59, 0)), ShouldEqual, prayer.Fajr)
		})

		Convey("When it is just after midnight", func() {
			So(prayer.SelectCurrent(s, prayer.NewTimeOfDay(0, 1, 0)), ShouldEqual, prayer.Fajr)
		})
	})

	Convey("Given the fallback schedule", t, func() {
		s := prayer.Build(solar.Fallback(), model.CalendarDate{Year: 2025, Month: time.January, Day: 1})

		Convey("Then an instant equal to now is already past", func() {
			So(prayer.SelectCurrent(s, prayer.NewTimeOfDay(5, 30, 0)), ShouldEqual, prayer.Sunrise)
			So(prayer.SelectCurrent(s, prayer.NewTimeOfDay(19, 44, 59)), ShouldEqual, prayer.Isha)
			So(prayer.SelectCurrent(s, prayer.NewTimeOfDay(19, 45, 0)), ShouldEqual, prayer.Fajr)
			So(prayer.SelectCurrent(s, prayer.NewTimeOfDay(13, 0, 0)), ShouldEqual, prayer.Asr)
		})
	})
}
