// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/salat/internal/domain/gazetteer"
	"github.com/okian/salat/internal/domain/model"
	"github.com/okian/salat/internal/domain/prayer"
	"github.com/okian/salat/internal/domain/types"
	"github.com/okian/salat/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	PrayerTimes(ctx context.Context, coord model.Coordinate, date model.CalendarDate, now *prayer.TimeOfDay) (types.PrayerTimes, error)
	PrayerCalendar(ctx context.Context, coord model.Coordinate, from model.CalendarDate, days int) (types.PrayerCalendar, error)
	Qibla(ctx context.Context, coord model.Coordinate) (types.Qibla, error)

	Cities(ctx context.Context, language string) ([]gazetteer.City, error)
	Duas(ctx context.Context) gazetteer.DuaCollection
	Verses(ctx context.Context) []gazetteer.Verse

	// Today is the local date used when a request names none.
	Today() model.CalendarDate
	// Meridiem holds the markers accepted in the now query parameter.
	Meridiem() prayer.Meridiem
}

// Route patterns, also used as metrics endpoint labels.
const (
	routeHealth         = "/api/health"
	routeCities         = "/api/cities/{language}"
	routePrayerTimes    = "/api/prayer-times/{lat}/{lng}"
	routePrayerCalendar = "/api/prayer-calendar/{lat}/{lng}"
	routeQibla          = "/api/qibla/{lat}/{lng}"
	routeDuas           = "/api/duas"
	routeQuran          = "/api/quran"
	routeStats          = "/stats"
	routeMetrics        = "/metrics"
)

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	prayerHandler  *PrayerHandler
	qiblaHandler   *QiblaHandler
	contentHandler *ContentHandler
	corsOrigins    []string
	logger         logger.Logger
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithCORSOrigins sets the origins allowed to call the API from a browser.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.corsOrigins = origins
		}
	}
}

// WithLogger sets the logger used for request logs and handler failures.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{corsOrigins: []string{"*"}}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(statsProvider)
	s.prayerHandler = NewPrayerHandler(deps, s.logger)
	s.qiblaHandler = NewQiblaHandler(deps, s.logger)
	s.contentHandler = NewContentHandler(deps, s.logger)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	get := func(route string, h http.HandlerFunc) {
		mux.HandleFunc(http.MethodGet+" "+route, MetricsMiddleware(h, route))
	}

	get(routeHealth, s.healthHandler.HandleHealth)
	get(routeCities, s.contentHandler.HandleCities)
	get(routePrayerTimes, s.prayerHandler.HandlePrayerTimes)
	get(routePrayerCalendar, s.prayerHandler.HandlePrayerCalendar)
	get(routeQibla, s.qiblaHandler.HandleQibla)
	get(routeDuas, s.contentHandler.HandleDuas)
	get(routeQuran, s.contentHandler.HandleQuran)
	get(routeStats, s.statsHandler.HandleStats)
	mux.Handle(http.MethodGet+" "+routeMetrics, s.healthHandler.MetricsHandler())
}

// Handler wraps next with the request id, request logging and CORS
// middleware.
func (s *Server) Handler(next http.Handler) http.Handler {
	return RequestID(RequestLogger(CORS(next, s.corsOrigins), s.logger))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	_ = writeResponse(w, r, status, errorResponse{Code: code, Message: msg})
}

// writeOK encodes v with status 200, logging encode failures.
func writeOK(w http.ResponseWriter, r *http.Request, log logger.Logger, op string, v any) {
	if err := writeResponse(w, r, http.StatusOK, v); err != nil {
		log.Warn(r.Context(), "failed to write response",
			logger.String("op", op),
			logger.String("requestID", RequestIDFrom(r.Context())),
			logger.Error(WrapKind(op, ErrEncode, err)),
		)
	}
}

// classify maps a handler error to an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInvalidCoordinate):
		return http.StatusBadRequest, "invalid_coordinate"
	case errors.Is(err, model.ErrInvalidDate):
		return http.StatusBadRequest, "invalid_date"
	case errors.Is(err, prayer.ErrInvalidClock):
		return http.StatusBadRequest, "invalid_now"
	case errors.Is(err, model.ErrInvalidDays):
		return http.StatusBadRequest, "invalid_days"
	case errors.Is(err, model.ErrRangeTooLarge):
		return http.StatusBadRequest, "range_too_large"
	case errors.Is(err, gazetteer.ErrLanguageNotSupported):
		return http.StatusNotFound, "language_not_supported"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// fail writes the error response for err and logs server side failures.
func fail(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		log.Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.String("requestID", RequestIDFrom(r.Context())),
			logger.Error(err),
		)
	}
	writeError(w, r, status, code, err)
}
