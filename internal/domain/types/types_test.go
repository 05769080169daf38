package types_test

import (
	"encoding/json"
	"testing"

	types "github.com/okian/salat/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPrayerTimes(t *testing.T) {
	Convey("Given prayer times", t, func() {
		p := types.PrayerTimes{
			Fajr: "04:01 AM", Sunrise: "05:30 AM", Dhuhr: "12:05 PM",
			Asr: "03:30 PM", Maghrib: "07:40 PM", Isha: "09:22 PM",
			Date: "2025-06-15", City: "Erbil", Source: "computed",
		}

		Convey("Then Times lists them in daily order", func() {
			So(p.Times(), ShouldResemble, [6]string{"04:01 AM", "05:30 AM", "12:05 PM", "03:30 PM", "07:40 PM", "09:22 PM"})
		})

		Convey("When a calendar day is encoded without a current prayer", func() {
			raw, err := json.Marshal(p)
			So(err, ShouldBeNil)

			Convey("Then the optional keys are omitted", func() {
				var m map[string]any
				So(json.Unmarshal(raw, &m), ShouldBeNil)
				So(m, ShouldNotContainKey, "current_prayer")
				So(m, ShouldNotContainKey, "reason")
				So(m, ShouldContainKey, "source")
			})
		})
	})
}

func TestQibla(t *testing.T) {
	Convey("Given a qibla response", t, func() {
		raw, err := json.Marshal(types.Qibla{Direction: 195.2, Latitude: 36.19, Longitude: 44.01})
		So(err, ShouldBeNil)
		So(string(raw), ShouldEqual, `{"qibla_direction":195.2,"lat":36.19,"lng":44.01}`)
	})
}
