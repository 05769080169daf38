// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/salat/internal/domain/gazetteer"
	"github.com/okian/salat/internal/domain/model"
	"github.com/okian/salat/internal/domain/prayer"
	"github.com/okian/salat/internal/domain/qibla"
	"github.com/okian/salat/internal/domain/solar"
	"github.com/okian/salat/internal/domain/types"
	"github.com/okian/salat/pkg/logger"
	"github.com/okian/salat/pkg/metrics"
)

const (
	defaultMaxCalendarDays = 31

	opPrayerTimes    = "prayer_times"
	opPrayerCalendar = "prayer_calendar"
	opQibla          = "qibla"
)

// Service computes prayer schedules and qibla bearings and serves the static
// reference data.
type Service struct {
	mu sync.RWMutex

	// Configuration
	clock           func() time.Time
	zone            *time.Location
	meridiem        prayer.Meridiem
	placeTolerance  float64
	maxCalendarDays int

	// State
	started   bool
	startedAt time.Time

	// Counters
	schedules     atomic.Int64
	fallbacks     atomic.Int64
	calendars     atomic.Int64
	qiblas        atomic.Int64
	lookupsHit    atomic.Int64
	lookupsMissed atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the source of the current time used when a request does not
// name one.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithMeridiem sets the markers used to render 12-hour times.
func WithMeridiem(m prayer.Meridiem) Option {
	return func(s *Service) {
		if m.AM != "" && m.PM != "" && m.AM != m.PM {
			s.meridiem = m
		}
	}
}

// WithPlaceTolerance sets the per-axis tolerance of the city lookup.
func WithPlaceTolerance(tolerance float64) Option {
	return func(s *Service) {
		if tolerance > 0 {
			s.placeTolerance = tolerance
		}
	}
}

// WithMaxCalendarDays caps the length of a calendar request.
func WithMaxCalendarDays(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.maxCalendarDays = days
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		clock:           time.Now,
		zone:            solar.LocalZone(),
		meridiem:        prayer.KurdishMeridiem,
		placeTolerance:  gazetteer.DefaultTolerance,
		maxCalendarDays: defaultMaxCalendarDays,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	return s
}

// Start marks the service as serving.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.started = true
	s.startedAt = s.clock()
	s.logger.Info(ctx, "prayer times service started",
		logger.String("zone", s.zone.String()),
		logger.String("meridiemAM", s.meridiem.AM),
		logger.String("meridiemPM", s.meridiem.PM),
		logger.Float64("placeTolerance", s.placeTolerance),
		logger.Int("maxCalendarDays", s.maxCalendarDays),
	)
	return nil
}

// Stop marks the service as stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "prayer times service stopped")
}

// Now returns the current local clock time.
func (s *Service) Now() prayer.TimeOfDay {
	t := s.clock().In(s.zone)
	return prayer.NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

// Today returns the current local date.
func (s *Service) Today() model.CalendarDate {
	return model.DateOf(s.clock().In(s.zone))
}

// Meridiem returns the markers used to render times.
func (s *Service) Meridiem() prayer.Meridiem {
	return s.meridiem
}

// MaxCalendarDays returns the longest calendar the service will build.
func (s *Service) MaxCalendarDays() int {
	return s.maxCalendarDays
}

// PrayerTimes builds the schedule for coord on date and selects the current
// prayer at now, or at the local clock time when now is nil.
func (s *Service) PrayerTimes(ctx context.Context, coord model.Coordinate, date model.CalendarDate, now *prayer.TimeOfDay) (types.PrayerTimes, error) {
	if err := ctx.Err(); err != nil {
		return types.PrayerTimes{}, err
	}
	if err := coord.Validate(); err != nil {
		return types.PrayerTimes{}, fmt.Errorf("prayer times: %w", err)
	}
	start := time.Now()

	sched := s.schedule(ctx, coord, date).Located(s.lookupPlace(coord))

	at := s.Now()
	if now != nil {
		at = *now
	}
	current := prayer.SelectCurrent(sched, at)
	metrics.RecordCurrentPrayer(string(current))

	view := s.render(sched)
	view.CurrentPrayer = string(current)

	took := time.Since(start)
	metrics.RecordComputationLatency(opPrayerTimes, float64(took.Microseconds())/1000)
	s.logger.Debug(ctx, "prayer times computed",
		logger.String("coordinate", coord.String()),
		logger.String("date", date.String()),
		logger.String("city", sched.Location),
		logger.String("current", string(current)),
		logger.Duration("took", took),
	)
	return view, nil
}

// PrayerCalendar builds days consecutive schedules starting at from.
func (s *Service) PrayerCalendar(ctx context.Context, coord model.Coordinate, from model.CalendarDate, days int) (types.PrayerCalendar, error) {
	if days < 1 {
		return types.PrayerCalendar{}, fmt.Errorf("prayer calendar: %w, got %d", model.ErrInvalidDays, days)
	}
	if days > s.maxCalendarDays {
		return types.PrayerCalendar{}, fmt.Errorf("prayer calendar: %w: %d days exceeds %d", model.ErrRangeTooLarge, days, s.maxCalendarDays)
	}
	if err := coord.Validate(); err != nil {
		return types.PrayerCalendar{}, fmt.Errorf("prayer calendar: %w", err)
	}
	start := time.Now()

	city := s.lookupPlace(coord)
	out := types.PrayerCalendar{
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		City:      city,
		Days:      make([]types.PrayerTimes, 0, days),
	}
	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			return types.PrayerCalendar{}, err
		}
		sched := s.schedule(ctx, coord, from.AddDays(i)).Located(city)
		out.Days = append(out.Days, s.render(sched))
	}

	s.calendars.Add(1)
	metrics.RecordCalendarDays(days)
	took := time.Since(start)
	metrics.RecordComputationLatency(opPrayerCalendar, float64(took.Microseconds())/1000)
	s.logger.Debug(ctx, "prayer calendar computed",
		logger.String("coordinate", coord.String()),
		logger.String("from", from.String()),
		logger.Int("days", days),
		logger.Duration("took", took),
	)
	return out, nil
}

// Qibla returns the bearing toward the Kaaba from coord.
func (s *Service) Qibla(ctx context.Context, coord model.Coordinate) (types.Qibla, error) {
	if err := ctx.Err(); err != nil {
		return types.Qibla{}, err
	}
	if err := coord.Validate(); err != nil {
		return types.Qibla{}, fmt.Errorf("qibla: %w", err)
	}
	start := time.Now()
	bearing := qibla.Bearing(coord)

	s.qiblas.Add(1)
	metrics.RecordQibla()
	metrics.RecordComputationLatency(opQibla, float64(time.Since(start).Microseconds())/1000)
	s.logger.Debug(ctx, "qibla computed",
		logger.String("coordinate", coord.String()),
		logger.Float64("bearing", bearing),
	)
	return types.Qibla{Direction: bearing, Latitude: coord.Latitude, Longitude: coord.Longitude}, nil
}

// Cities returns the cities of a language.
func (s *Service) Cities(_ context.Context, language string) ([]gazetteer.City, error) {
	return gazetteer.Cities(language)
}

// Duas returns the dua collection.
func (s *Service) Duas(_ context.Context) gazetteer.DuaCollection {
	return gazetteer.Duas()
}

// Verses returns the Quran verses.
func (s *Service) Verses(_ context.Context) []gazetteer.Verse {
	return gazetteer.Verses()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":           s.started,
		"zone":              s.zone.String(),
		"schedules":         s.schedules.Load(),
		"fallbackSchedules": s.fallbacks.Load(),
		"calendars":         s.calendars.Load(),
		"qiblaComputations": s.qiblas.Load(),
		"placeLookupHits":   s.lookupsHit.Load(),
		"placeLookupMisses": s.lookupsMissed.Load(),
	}
	if s.started {
		stats["uptimeSeconds"] = int64(s.clock().Sub(s.startedAt).Seconds())
	}
	return stats
}

func (s *Service) schedule(ctx context.Context, coord model.Coordinate, date model.CalendarDate) prayer.Schedule {
	sched := prayer.Build(solar.ComputeSunEvents(solar.ComputeGeometry(date), coord), date)

	s.schedules.Add(1)
	metrics.RecordSchedule(string(sched.Source), string(sched.Reason))
	if sched.Source == prayer.SourceFallback {
		s.fallbacks.Add(1)
		s.logger.Info(ctx, "using fallback prayer schedule",
			logger.String("coordinate", coord.String()),
			logger.String("date", date.String()),
			logger.String("reason", string(sched.Reason)),
		)
	}
	return sched
}

func (s *Service) lookupPlace(coord model.Coordinate) string {
	city, ok := gazetteer.LookupCity(coord, s.placeTolerance)
	metrics.RecordPlaceLookup(ok)
	if !ok {
		s.lookupsMissed.Add(1)
		return gazetteer.UnknownPlace
	}
	s.lookupsHit.Add(1)
	return city.Name
}

func (s *Service) render(sched prayer.Schedule) types.PrayerTimes {
	t := sched.Format(s.meridiem)
	return types.PrayerTimes{
		Fajr:    t[0],
		Sunrise: t[1],
		Dhuhr:   t[2],
		Asr:     t[3],
		Maghrib: t[4],
		Isha:    t[5],
		Date:    sched.Date.String(),
		City:    sched.Location,
		Source:  string(sched.Source),
		Reason:  string(sched.Reason),
	}
}
