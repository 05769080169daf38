package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/salat/internal/domain/model"
)

// coordinateFromPath parses and validates the {lat} and {lng} path values.
func coordinateFromPath(r *http.Request) (model.Coordinate, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(r.PathValue("lat")), 64)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("%w: latitude %q is not a number", model.ErrInvalidCoordinate, r.PathValue("lat"))
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(r.PathValue("lng")), 64)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("%w: longitude %q is not a number", model.ErrInvalidCoordinate, r.PathValue("lng"))
	}
	c := model.Coordinate{Latitude: lat, Longitude: lng}
	if err := c.Validate(); err != nil {
		return model.Coordinate{}, err
	}
	return c, nil
}

// dateFromQuery parses the named YYYY-MM-DD query value, using fallback when
// it is absent.
func dateFromQuery(r *http.Request, name string, fallback model.CalendarDate) (model.CalendarDate, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return model.ParseDate(raw)
}
