package smoke

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/okian/salat/internal/domain/gazetteer"
	"github.com/okian/salat/internal/domain/types"
	"github.com/okian/salat/pkg/logger"
)

type citiesResponse struct {
	Cities []gazetteer.City `json:"cities"`
}

type versesResponse struct {
	Verses []gazetteer.Verse `json:"verses"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Run executes every smoke check against the service and returns the
// collected statistics. The error is ErrChecksFailed when any check failed.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	stats := &Stats{StartTime: time.Now()}
	log := logger.Named("smoke")
	client := newHTTPClient(cfg)

	log.Info(ctx, "starting salat smoke run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout),
		logger.String("format", cfg.Format),
		logger.Bool("verbose", cfg.Verbose))

	// Step 1: Check service health
	if err := check(ctx, cfg, stats, "health", func() error { return checkHealth(ctx, client) }); err != nil {
		finish(ctx, stats)
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: City tables for every published language
	var cities []gazetteer.City
	for _, lang := range checkedLanguages {
		var list []gazetteer.City
		_ = check(ctx, cfg, stats, "cities/"+lang, func() error {
			var err error
			list, err = fetchCities(ctx, client, lang)
			return err
		})
		cities = append(cities, list...)
	}

	_ = check(ctx, cfg, stats, "cities/coverage", func() error { return verifyCoverage(cities) })

	// Step 3: Unsupported language is rejected
	_ = check(ctx, cfg, stats, "cities/"+unsupportedLanguage, func() error {
		return checkUnsupportedLanguage(ctx, client)
	})

	// Step 4: Prayer times and qibla for every city, concurrently
	checkCities(ctx, cfg, client, cities, stats)

	// Step 5: Static content
	_ = check(ctx, cfg, stats, "duas", func() error {
		var duas gazetteer.DuaCollection
		if err := client.Get(ctx, "/api/duas", nil, http.StatusOK, &duas); err != nil {
			return err
		}
		return verifyDuas(duas)
	})
	_ = check(ctx, cfg, stats, "quran", func() error {
		var verses versesResponse
		if err := client.Get(ctx, "/api/quran", nil, http.StatusOK, &verses); err != nil {
			return err
		}
		return verifyVerses(verses.Verses)
	})

	finish(ctx, stats)
	if stats.Failed > 0 {
		return stats, fmt.Errorf("%w: %d of %d", ErrChecksFailed, stats.Failed, stats.Checks)
	}
	log.Info(ctx, "smoke run completed successfully")
	return stats, nil
}

// check runs one named check, records its outcome and logs it.
func check(ctx context.Context, cfg *Config, stats *Stats, name string, fn func() error) error {
	took, err := timed(fn)
	stats.record(name, err)
	log := logger.Named("smoke")
	switch {
	case err != nil:
		log.Warn(ctx, "check failed", logger.String("check", name), logger.Duration("took", took), logger.Error(err))
	case cfg.Verbose:
		log.Info(ctx, "check passed", logger.String("check", name), logger.Duration("took", took))
	}
	return err
}

func checkHealth(ctx context.Context, client *HTTPClient) error {
	var health types.Health
	if err := client.Get(ctx, "/api/health", nil, http.StatusOK, &health); err != nil {
		return err
	}
	if health.Status != "healthy" {
		return fmt.Errorf("%w: health status %q", ErrInvalidResponse, health.Status)
	}
	return nil
}

func fetchCities(ctx context.Context, client *HTTPClient, lang string) ([]gazetteer.City, error) {
	var resp citiesResponse
	if err := client.Get(ctx, "/api/cities/"+lang, nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	if err := verifyCities(resp.Cities); err != nil {
		return nil, err
	}
	return resp.Cities, nil
}

func checkUnsupportedLanguage(ctx context.Context, client *HTTPClient) error {
	var resp errorResponse
	if err := client.Get(ctx, "/api/cities/"+unsupportedLanguage, nil, http.StatusNotFound, &resp); err != nil {
		return err
	}
	if resp.Code != "language_not_supported" {
		return fmt.Errorf("%w: error code %q", ErrInvalidResponse, resp.Code)
	}
	return nil
}

// checkCities runs the per-city prayer-times and qibla checks on a worker pool.
func checkCities(ctx context.Context, cfg *Config, client *HTTPClient, cities []gazetteer.City, stats *Stats) {
	cityChan := make(chan gazetteer.City, cfg.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for city := range cityChan {
				if ctx.Err() != nil {
					continue
				}
				_ = check(ctx, cfg, stats, "prayer-times/"+city.NameEn, func() error {
					return checkPrayerTimes(ctx, cfg, client, city)
				})
				_ = check(ctx, cfg, stats, "qibla/"+city.NameEn, func() error {
					return checkQibla(ctx, client, city)
				})
			}
		}()
	}

	go func() {
		defer close(cityChan)
		for _, city := range cities {
			select {
			case <-ctx.Done():
				return
			case cityChan <- city:
			}
		}
	}()

	wg.Wait()
}

func checkPrayerTimes(ctx context.Context, cfg *Config, client *HTTPClient, city gazetteer.City) error {
	var query url.Values
	if cfg.Date != "" {
		query = url.Values{"date": {cfg.Date}}
	}
	var times types.PrayerTimes
	if err := client.Get(ctx, "/api/prayer-times/"+coordPath(city), query, http.StatusOK, &times); err != nil {
		return err
	}
	if cfg.Date != "" && times.Date != cfg.Date {
		return fmt.Errorf("%w: date %q, want %q", ErrInvalidResponse, times.Date, cfg.Date)
	}
	return verifyPrayerTimes(times, cfg.Meridiem, city.Name)
}

func checkQibla(ctx context.Context, client *HTTPClient, city gazetteer.City) error {
	var q types.Qibla
	if err := client.Get(ctx, "/api/qibla/"+coordPath(city), nil, http.StatusOK, &q); err != nil {
		return err
	}
	return verifyQibla(q)
}

func coordPath(city gazetteer.City) string {
	return strconv.FormatFloat(city.Latitude, 'f', -1, 64) + "/" + strconv.FormatFloat(city.Longitude, 'f', -1, 64)
}

// finish stamps the end time and logs the summary.
func finish(ctx context.Context, stats *Stats) {
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)
}

// displayFinalStats logs the final run statistics and the first failures.
func displayFinalStats(ctx context.Context, stats *Stats) {
	log := logger.Named("smoke")
	log.Info(ctx, "final statistics",
		logger.Int("checks", stats.Checks),
		logger.Int("passed", stats.Passed),
		logger.Int("failed", stats.Failed),
		logger.Duration("duration", stats.Duration),
		logger.Float64("successRate", stats.SuccessRate()))

	for i, f := range stats.Failures {
		if i == maxFailuresLogged {
			log.Warn(ctx, "further failures omitted", logger.Int("omitted", len(stats.Failures)-i))
			break
		}
		log.Warn(ctx, "failure", logger.String("detail", f))
	}
}
