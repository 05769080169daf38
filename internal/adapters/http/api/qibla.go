package api

import (
	"net/http"

	"github.com/okian/salat/pkg/logger"
)

// QiblaHandler serves qibla bearings.
type QiblaHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewQiblaHandler creates a new qibla handler.
func NewQiblaHandler(deps Dependencies, log logger.Logger) *QiblaHandler {
	return &QiblaHandler{deps: deps, logger: log}
}

// HandleQibla handles GET /api/qibla/{lat}/{lng}.
func (h *QiblaHandler) HandleQibla(w http.ResponseWriter, r *http.Request) {
	const op = "qibla"

	coord, err := coordinateFromPath(r)
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}
	q, err := h.deps.Qibla(r.Context(), coord)
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}
	writeOK(w, r, h.logger, op, q)
}
