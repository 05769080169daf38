package api

import (
	"net/http"
	"strconv"

	"github.com/okian/salat/internal/domain/model"
	"github.com/okian/salat/internal/domain/prayer"
	"github.com/okian/salat/pkg/logger"
)

const defaultCalendarDays = 7

// PrayerHandler serves daily schedules and calendars.
type PrayerHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewPrayerHandler creates a new prayer handler.
func NewPrayerHandler(deps Dependencies, log logger.Logger) *PrayerHandler {
	return &PrayerHandler{deps: deps, logger: log}
}

// HandlePrayerTimes handles GET /api/prayer-times/{lat}/{lng}?date=&now=.
func (h *PrayerHandler) HandlePrayerTimes(w http.ResponseWriter, r *http.Request) {
	const op = "prayer times"

	coord, err := coordinateFromPath(r)
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}
	date, err := dateFromQuery(r, "date", h.deps.Today())
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}

	var now *prayer.TimeOfDay
	if raw := r.URL.Query().Get("now"); raw != "" {
		t, err := prayer.ParseClock(raw, h.deps.Meridiem())
		if err != nil {
			fail(w, r, h.logger, Wrap(op, err))
			return
		}
		now = &t
	}

	view, err := h.deps.PrayerTimes(r.Context(), coord, date, now)
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}
	writeOK(w, r, h.logger, op, view)
}

// HandlePrayerCalendar handles GET /api/prayer-calendar/{lat}/{lng}?from=&days=.
func (h *PrayerHandler) HandlePrayerCalendar(w http.ResponseWriter, r *http.Request) {
	const op = "prayer calendar"

	coord, err := coordinateFromPath(r)
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}
	from, err := dateFromQuery(r, "from", h.deps.Today())
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}

	days := defaultCalendarDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil {
			fail(w, r, h.logger, WrapKind(op, model.ErrInvalidDays, err))
			return
		}
	}

	cal, err := h.deps.PrayerCalendar(r.Context(), coord, from, days)
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}
	writeOK(w, r, h.logger, op, cal)
}
