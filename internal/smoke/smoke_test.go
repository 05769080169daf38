package smoke

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/salat/internal/adapters/http/api"
	service "github.com/okian/salat/internal/app"
	"github.com/okian/salat/internal/domain/gazetteer"
	"github.com/okian/salat/internal/domain/prayer"
	"github.com/okian/salat/internal/domain/types"
	"github.com/okian/salat/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// 2025-03-20 09:00 UTC is noon local.
var testNow = time.Date(2025, time.March, 20, 9, 0, 0, 0, time.UTC)

// Health, two city tables, their coverage, the unsupported language,
// prayer-times and qibla for each known city, duas and quran.
var totalChecks = 1 + 2 + 1 + 1 + len(gazetteer.AllCities())*2 + 2

func newTestServer(m prayer.Meridiem) *httptest.Server {
	svc := service.New(
		service.WithClock(func() time.Time { return testNow }),
		service.WithMeridiem(m),
	)
	server := api.NewServer(svc, svc, api.WithLogger(logger.Named("smoke-test")))
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return httptest.NewServer(server.Handler(mux))
}

func TestRun(t *testing.T) {
	Convey("Given a running salat API", t, func() {
		ts := newTestServer(prayer.EnglishMeridiem)
		defer ts.Close()

		for _, format := range []string{FormatJSON, FormatMsgPack} {
			Convey("When the smoke run uses "+format, func() {
				stats, err := Run(context.Background(), &Config{
					BaseURL:  ts.URL + "/",
					Workers:  4,
					Format:   format,
					Date:     "2025-03-20",
					Meridiem: prayer.EnglishMeridiem,
				})

				Convey("Then every check passes", func() {
					So(err, ShouldBeNil)
					So(stats.Failures, ShouldBeEmpty)
					So(stats.Checks, ShouldEqual, totalChecks)
					So(stats.Passed, ShouldEqual, totalChecks)
					So(stats.SuccessRate(), ShouldEqual, 100.0)
					So(stats.Duration > 0, ShouldBeTrue)
				})
			})
		}

		Convey("When the client expects markers the service does not render", func() {
			stats, err := Run(context.Background(), &Config{
				BaseURL:  ts.URL,
				Workers:  2,
				Meridiem: prayer.Meridiem{AM: "x", PM: "y"},
			})

			Convey("Then English markers are still accepted", func() {
				So(err, ShouldBeNil)
				So(stats.Failed, ShouldEqual, 0)
			})
		})
	})

	Convey("Given a service rendering Kurdish markers", t, func() {
		ts := newTestServer(prayer.KurdishMeridiem)
		defer ts.Close()

		Convey("When the client expects the default markers", func() {
			stats, err := Run(context.Background(), &Config{BaseURL: ts.URL, Workers: 3})

			Convey("Then every check passes", func() {
				So(err, ShouldBeNil)
				So(stats.Passed, ShouldEqual, totalChecks)
			})
		})
	})

	Convey("Given an unhealthy service", t, func() {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		Convey("When the smoke run starts", func() {
			stats, err := Run(context.Background(), &Config{BaseURL: ts.URL})

			Convey("Then it stops after the health check", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, ErrUnexpectedStatus), ShouldBeTrue)
				So(errors.Is(err, ErrChecksFailed), ShouldBeFalse)
				So(stats.Checks, ShouldEqual, 1)
				So(stats.Failed, ShouldEqual, 1)
			})
		})
	})

	Convey("Given a service whose content routes are missing", t, func() {
		svc := service.New(service.WithClock(func() time.Time { return testNow }))
		server := api.NewServer(svc, svc)
		full := http.NewServeMux()
		server.Register(context.Background(), full)
		mux := http.NewServeMux()
		mux.Handle("/api/health", full)
		mux.Handle("/api/cities/", full)
		ts := httptest.NewServer(mux)
		defer ts.Close()

		Convey("When the smoke run completes", func() {
			stats, err := Run(context.Background(), &Config{BaseURL: ts.URL, Workers: 2})

			Convey("Then the failed checks are reported", func() {
				So(errors.Is(err, ErrChecksFailed), ShouldBeTrue)
				So(stats.Failed, ShouldEqual, 14*2+2)
				So(stats.Passed, ShouldEqual, 5)
				So(stats.Failures, ShouldHaveLength, stats.Failed)
			})
		})
	})
}

func TestConfigValidate(t *testing.T) {
	Convey("Given smoke configs", t, func() {
		Convey("When only the base url is set", func() {
			cfg := &Config{BaseURL: "http://localhost:8001/"}
			So(cfg.Validate(), ShouldBeNil)

			Convey("Then defaults are filled", func() {
				So(cfg.BaseURL, ShouldEqual, "http://localhost:8001")
				So(cfg.Workers, ShouldEqual, 1)
				So(cfg.Timeout, ShouldEqual, DefaultTimeout)
				So(cfg.Format, ShouldEqual, FormatJSON)
				So(cfg.Meridiem, ShouldResemble, prayer.KurdishMeridiem)
			})
		})

		Convey("When the format is unknown", func() {
			err := (&Config{BaseURL: "http://x", Format: "xml"}).Validate()

			Convey("Then it is rejected", func() {
				So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
				So(errors.Is(err, ErrUnsupportedFormat), ShouldBeTrue)
			})
		})

		Convey("When the base url is empty", func() {
			_, err := Run(context.Background(), &Config{})

			Convey("Then Run refuses to start", func() {
				So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}

func TestVerifyPrayerTimes(t *testing.T) {
	Convey("Given a valid computed schedule", t, func() {
		p := types.PrayerTimes{
			Fajr: "04:30 AM", Sunrise: "06:00 AM", Dhuhr: "12:05 PM",
			Asr: "03:30 PM", Maghrib: "06:05 PM", Isha: "07:45 PM",
			Date: "2025-03-20", City: "Erbil", CurrentPrayer: "asr", Source: "computed",
		}

		Convey("Then it verifies", func() {
			So(verifyPrayerTimes(p, prayer.EnglishMeridiem, "Erbil"), ShouldBeNil)
		})

		Convey("When two instants are out of order", func() {
			p.Asr = "11:00 AM"
			So(errors.Is(verifyPrayerTimes(p, prayer.EnglishMeridiem, ""), ErrInvalidResponse), ShouldBeTrue)
		})

		Convey("When two instants share a minute", func() {
			p.Maghrib = "03:30 PM"
			So(verifyPrayerTimes(p, prayer.EnglishMeridiem, ""), ShouldBeNil)
		})

		Convey("When a time is not in 12-hour form", func() {
			p.Isha = "19:45"
			So(verifyPrayerTimes(p, prayer.EnglishMeridiem, ""), ShouldNotBeNil)
		})

		Convey("When a computed schedule carries a reason", func() {
			p.Reason = "degenerate_order"
			So(verifyPrayerTimes(p, prayer.EnglishMeridiem, ""), ShouldNotBeNil)
		})

		Convey("When the source is unknown", func() {
			p.Source = "guessed"
			So(verifyPrayerTimes(p, prayer.EnglishMeridiem, ""), ShouldNotBeNil)
		})

		Convey("When the current prayer is unknown", func() {
			p.CurrentPrayer = "midnight"
			So(verifyPrayerTimes(p, prayer.EnglishMeridiem, ""), ShouldNotBeNil)
		})

		Convey("When the city differs", func() {
			So(verifyPrayerTimes(p, prayer.EnglishMeridiem, "Duhok"), ShouldNotBeNil)
		})

		Convey("When it is a fallback with a known reason", func() {
			p.Source = "fallback"
			p.Reason = "undefined_hour_angle"
			So(verifyPrayerTimes(p, prayer.EnglishMeridiem, ""), ShouldBeNil)

			p.Reason = ""
			So(verifyPrayerTimes(p, prayer.EnglishMeridiem, ""), ShouldNotBeNil)
		})
	})
}

func TestVerifyCoverage(t *testing.T) {
	Convey("Given the known city tables", t, func() {
		all := gazetteer.AllCities()

		Convey("Then serving all of them passes", func() {
			So(verifyCoverage(all), ShouldBeNil)
		})

		Convey("When one city is missing", func() {
			err := verifyCoverage(all[1:])
			So(errors.Is(err, ErrInvalidResponse), ShouldBeTrue)
		})

		Convey("When an unknown city replaces a known one", func() {
			served := append([]gazetteer.City{{ID: "not-a-city"}}, all[1:]...)
			So(errors.Is(verifyCoverage(served), ErrInvalidResponse), ShouldBeTrue)
		})
	})
}

func TestVerifyQibla(t *testing.T) {
	Convey("Given qibla bearings", t, func() {
		So(verifyQibla(types.Qibla{Direction: 0}), ShouldBeNil)
		So(verifyQibla(types.Qibla{Direction: 197.3}), ShouldBeNil)
		So(verifyQibla(types.Qibla{Direction: 359.9}), ShouldBeNil)
		So(verifyQibla(types.Qibla{Direction: 360}), ShouldNotBeNil)
		So(verifyQibla(types.Qibla{Direction: -0.1}), ShouldNotBeNil)
		So(verifyQibla(types.Qibla{Direction: 12.34}), ShouldNotBeNil)
	})
}
