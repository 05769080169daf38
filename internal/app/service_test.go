package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	service "github.com/okian/salat/internal/app"
	"github.com/okian/salat/internal/domain/gazetteer"
	"github.com/okian/salat/internal/domain/model"
	"github.com/okian/salat/internal/domain/prayer"
	"github.com/okian/salat/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

var (
	erbil   = model.Coordinate{Latitude: 36.1911, Longitude: 44.0094}
	midJune = model.CalendarDate{Year: 2025, Month: time.June, Day: 15}
)

// fixedClock returns a clock stopped at the given UTC instant.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
			So(svc.Meridiem(), ShouldResemble, prayer.KurdishMeridiem)
			So(svc.MaxCalendarDays(), ShouldEqual, 31)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithLogger(logger.Named("test")),
			service.WithMeridiem(prayer.EnglishMeridiem),
			service.WithPlaceTolerance(0.5),
			service.WithMaxCalendarDays(7),
		)

		Convey("Then the options are applied", func() {
			So(svc.Meridiem(), ShouldResemble, prayer.EnglishMeridiem)
			So(svc.MaxCalendarDays(), ShouldEqual, 7)
		})
	})

	Convey("Given options with unusable values", t, func() {
		svc := service.New(
			service.WithMeridiem(prayer.Meridiem{AM: "x", PM: "x"}),
			service.WithPlaceTolerance(-1),
			service.WithMaxCalendarDays(0),
			service.WithClock(nil),
		)

		Convey("Then the defaults are kept", func() {
			So(svc.Meridiem(), ShouldResemble, prayer.KurdishMeridiem)
			So(svc.MaxCalendarDays(), ShouldEqual, 31)
		})
	})
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		start := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)
		now := start
		svc := service.New(service.WithClock(func() time.Time { return now }))
		defer svc.Stop()

		Convey("When starting the service", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			So(svc.Start(context.Background()), ShouldBeNil)
			now = start.Add(90 * time.Second)

			Convey("Then it should be marked as started with an uptime", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
				So(stats["uptimeSeconds"], ShouldEqual, int64(90))
			})

			Convey("And stopping marks it stopped", func() {
				svc.Stop()
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, false)
				So(stats, ShouldNotContainKey, "uptimeSeconds")
			})
		})
	})
}

func TestService_Clock(t *testing.T) {
	Convey("Given a clock at 22:30 UTC", t, func() {
		svc := service.New(service.WithClock(fixedClock(time.Date(2025, time.June, 15, 22, 30, 0, 0, time.UTC))))

		Convey("Then local time and date are three hours ahead", func() {
			So(svc.Now(), ShouldEqual, prayer.NewTimeOfDay(1, 30, 0))
			So(svc.Today(), ShouldResemble, model.CalendarDate{Year: 2025, Month: time.June, Day: 16})
		})
	})
}

func TestService_PrayerTimes(t *testing.T) {
	Convey("Given a service for Erbil", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithMeridiem(prayer.EnglishMeridiem))

		Convey("When times are requested with an explicit now", func() {
			midnight := prayer.NewTimeOfDay(0, 5, 0)
			view, err := svc.PrayerTimes(ctx, erbil, midJune, &midnight)

			Convey("Then the schedule is computed, named and formatted", func() {
				So(err, ShouldBeNil)
				So(view.Source, ShouldEqual, "computed")
				So(view.Reason, ShouldEqual, "")
				So(view.City, ShouldEqual, "هەولێر")
				So(view.Date, ShouldEqual, "2025-06-15")
				So(view.CurrentPrayer, ShouldEqual, "fajr")
				for _, v := range view.Times() {
					_, err := prayer.ParseClock(v, prayer.EnglishMeridiem)
					So(err, ShouldBeNil)
				}
			})
		})

		Convey("When now falls between maghrib and isha", func() {
			view, err := svc.PrayerTimes(ctx, erbil, midJune, nil)
			So(err, ShouldBeNil)
			maghrib, err := prayer.ParseClock(view.Maghrib, prayer.EnglishMeridiem)
			So(err, ShouldBeNil)

			at := maghrib + 120
			view, err = svc.PrayerTimes(ctx, erbil, midJune, &at)

			Convey("Then isha is current", func() {
				So(err, ShouldBeNil)
				So(view.CurrentPrayer, ShouldEqual, "isha")
			})
		})

		Convey("When the coordinate is far from every city", func() {
			view, err := svc.PrayerTimes(ctx, model.Coordinate{Latitude: 51.5, Longitude: -0.12}, midJune, nil)
			So(err, ShouldBeNil)
			So(view.City, ShouldEqual, gazetteer.UnknownPlace)
		})

		Convey("When the coordinate is polar in midwinter", func() {
			view, err := svc.PrayerTimes(ctx, model.Coordinate{Latitude: 80, Longitude: 15},
				model.CalendarDate{Year: 2025, Month: time.December, Day: 21}, nil)

			Convey("Then the fallback schedule is served", func() {
				So(err, ShouldBeNil)
				So(view.Source, ShouldEqual, "fallback")
				So(view.Reason, ShouldEqual, "undefined_hour_angle")
				So(view.Fajr, ShouldEqual, "05:30 AM")
				So(view.Isha, ShouldEqual, "07:45 PM")
				So(svc.GetStats()["fallbackSchedules"], ShouldBeGreaterThanOrEqualTo, int64(1))
			})
		})

		Convey("When the coordinate is out of range", func() {
			_, err := svc.PrayerTimes(ctx, model.Coordinate{Latitude: 91, Longitude: 0}, midJune, nil)
			So(errors.Is(err, model.ErrInvalidCoordinate), ShouldBeTrue)
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := svc.PrayerTimes(cctx, erbil, midJune, nil)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestService_PrayerCalendar(t *testing.T) {
	Convey("Given a service capped at 10 days", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithMaxCalendarDays(10))

		Convey("When a week is requested", func() {
			cal, err := svc.PrayerCalendar(ctx, erbil, midJune, 7)

			Convey("Then seven consecutive days come back", func() {
				So(err, ShouldBeNil)
				So(cal.City, ShouldEqual, "هەولێر")
				So(cal.Days, ShouldHaveLength, 7)
				So(cal.Days[0].Date, ShouldEqual, "2025-06-15")
				So(cal.Days[6].Date, ShouldEqual, "2025-06-21")
				for _, d := range cal.Days {
					So(d.CurrentPrayer, ShouldEqual, "")
					So(d.City, ShouldEqual, cal.City)
				}
			})
		})

		Convey("When the range crosses a year end", func() {
			cal, err := svc.PrayerCalendar(ctx, erbil, model.CalendarDate{Year: 2024, Month: time.December, Day: 30}, 3)
			So(err, ShouldBeNil)
			So(cal.Days[2].Date, ShouldEqual, "2025-01-01")
		})

		Convey("When too many days are requested", func() {
			_, err := svc.PrayerCalendar(ctx, erbil, midJune, 11)
			So(errors.Is(err, model.ErrRangeTooLarge), ShouldBeTrue)
		})

		Convey("When no days are requested", func() {
			_, err := svc.PrayerCalendar(ctx, erbil, midJune, 0)
			So(errors.Is(err, model.ErrInvalidDays), ShouldBeTrue)
		})
	})
}

func TestService_Qibla(t *testing.T) {
	Convey("Given a service", t, func() {
		svc := service.New()
		ctx := context.Background()

		Convey("When the qibla of Erbil is requested", func() {
			q, err := svc.Qibla(ctx, erbil)
			So(err, ShouldBeNil)
			So(q.Direction, ShouldBeBetween, 180, 215)
			So(q.Latitude, ShouldEqual, erbil.Latitude)
			So(q.Longitude, ShouldEqual, erbil.Longitude)
		})

		Convey("When the coordinate is invalid", func() {
			_, err := svc.Qibla(ctx, model.Coordinate{Latitude: 0, Longitude: 200})
			So(errors.Is(err, model.ErrInvalidCoordinate), ShouldBeTrue)
		})
	})
}

func TestService_Content(t *testing.T) {
	Convey("Given a service", t, func() {
		svc := service.New()
		ctx := context.Background()

		cities, err := svc.Cities(ctx, "kurdish")
		So(err, ShouldBeNil)
		So(cities, ShouldHaveLength, 7)

		_, err = svc.Cities(ctx, "french")
		So(errors.Is(err, gazetteer.ErrLanguageNotSupported), ShouldBeTrue)

		So(svc.Duas(ctx).Morning, ShouldHaveLength, 2)
		So(svc.Verses(ctx), ShouldHaveLength, 2)
	})
}

func TestService_Concurrency(t *testing.T) {
	Convey("Given many concurrent requests", t, func() {
		svc := service.New()
		ctx := context.Background()
		before := svc.GetStats()["schedules"].(int64)

		var wg sync.WaitGroup
		errs := make(chan error, 64)
		for i := 0; i < 64; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if _, err := svc.PrayerTimes(ctx, erbil, midJune.AddDays(i), nil); err != nil {
					errs <- err
				}
				if _, err := svc.Qibla(ctx, erbil); err != nil {
					errs <- err
				}
			}(i)
		}
		wg.Wait()
		close(errs)

		Convey("Then every request succeeds and is counted", func() {
			So(errs, ShouldBeEmpty)
			So(svc.GetStats()["schedules"], ShouldEqual, before+64)
		})
	})
}
