package api

import (
	"net/http"

	"github.com/okian/salat/internal/domain/gazetteer"
	"github.com/okian/salat/pkg/logger"
)

// ContentHandler serves the static reference data.
type ContentHandler struct {
	deps   Dependencies
	logger logger.Logger
}

type citiesResponse struct {
	Cities []gazetteer.City `json:"cities"`
}

type versesResponse struct {
	Verses []gazetteer.Verse `json:"verses"`
}

// NewContentHandler creates a new content handler.
func NewContentHandler(deps Dependencies, log logger.Logger) *ContentHandler {
	return &ContentHandler{deps: deps, logger: log}
}

// HandleCities handles GET /api/cities/{language}.
func (h *ContentHandler) HandleCities(w http.ResponseWriter, r *http.Request) {
	const op = "cities"

	cities, err := h.deps.Cities(r.Context(), r.PathValue("language"))
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}
	writeOK(w, r, h.logger, op, citiesResponse{Cities: cities})
}

// HandleDuas handles GET /api/duas.
func (h *ContentHandler) HandleDuas(w http.ResponseWriter, r *http.Request) {
	writeOK(w, r, h.logger, "duas", h.deps.Duas(r.Context()))
}

// HandleQuran handles GET /api/quran.
func (h *ContentHandler) HandleQuran(w http.ResponseWriter, r *http.Request) {
	writeOK(w, r, h.logger, "quran", versesResponse{Verses: h.deps.Verses(r.Context())})
}
