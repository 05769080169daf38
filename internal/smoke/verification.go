package smoke

import (
	"fmt"
	"math"

	"github.com/okian/salat/internal/domain/gazetteer"
	"github.com/okian/salat/internal/domain/model"
	"github.com/okian/salat/internal/domain/prayer"
	"github.com/okian/salat/internal/domain/types"
)

const qiblaDecimalTolerance = 1e-6

// verifyPrayerTimes checks that every time parses in 12-hour form, that the
// source and reason agree, that no computed instant precedes the one before it and
// that the current prayer names one of the six instants.
func verifyPrayerTimes(p types.PrayerTimes, m prayer.Meridiem, wantCity string) error {
	var parsed [prayer.Count]prayer.TimeOfDay
	names := prayer.Names()
	for i, s := range p.Times() {
		t, err := prayer.ParseClock(s, m)
		if err != nil {
			return fmt.Errorf("%w: %s %q: %w", ErrInvalidResponse, names[i], s, err)
		}
		if t.Format12(m) != s && t.Format12(prayer.EnglishMeridiem) != s {
			return fmt.Errorf("%w: %s %q is not a 12-hour time", ErrInvalidResponse, names[i], s)
		}
		parsed[i] = t
	}

	switch prayer.Source(p.Source) {
	case prayer.SourceComputed:
		if p.Reason != "" {
			return fmt.Errorf("%w: computed schedule carries reason %q", ErrInvalidResponse, p.Reason)
		}
		for i := 1; i < len(parsed); i++ {
			if parsed[i] < parsed[i-1] {
				return fmt.Errorf("%w: %s (%s) before %s (%s)",
					ErrInvalidResponse, names[i], p.Times()[i], names[i-1], p.Times()[i-1])
			}
		}
	case prayer.SourceFallback:
		switch prayer.Reason(p.Reason) {
		case prayer.ReasonUndefinedHourAngle, prayer.ReasonDegenerateOrder:
		default:
			return fmt.Errorf("%w: fallback reason %q", ErrInvalidResponse, p.Reason)
		}
	default:
		return fmt.Errorf("%w: source %q", ErrInvalidResponse, p.Source)
	}

	if !prayer.Name(p.CurrentPrayer).Valid() {
		return fmt.Errorf("%w: current prayer %q", ErrInvalidResponse, p.CurrentPrayer)
	}
	if _, err := model.ParseDate(p.Date); err != nil {
		return fmt.Errorf("%w: date %q: %w", ErrInvalidResponse, p.Date, err)
	}
	if wantCity != "" && p.City != wantCity {
		return fmt.Errorf("%w: city %q, want %q", ErrInvalidResponse, p.City, wantCity)
	}
	return nil
}

// verifyQibla checks the bearing range and its one-decimal rounding.
func verifyQibla(q types.Qibla) error {
	if q.Direction < 0 || q.Direction >= 360 {
		return fmt.Errorf("%w: qibla direction %g out of range", ErrInvalidResponse, q.Direction)
	}
	scaled := q.Direction * 10
	if math.Abs(scaled-math.Round(scaled)) > qiblaDecimalTolerance {
		return fmt.Errorf("%w: qibla direction %g not rounded to one decimal", ErrInvalidResponse, q.Direction)
	}
	return nil
}

// verifyCities checks that a city table is non-empty and every entry is usable.
func verifyCities(cities []gazetteer.City) error {
	if len(cities) == 0 {
		return fmt.Errorf("%w: empty city list", ErrInvalidResponse)
	}
	seen := make(map[string]struct{}, len(cities))
	for _, c := range cities {
		if c.ID == "" || c.Name == "" || c.NameEn == "" {
			return fmt.Errorf("%w: incomplete city %+v", ErrInvalidResponse, c)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: duplicate city id %s", ErrInvalidResponse, c.ID)
		}
		seen[c.ID] = struct{}{}
		if err := c.Coordinate().Validate(); err != nil {
			return fmt.Errorf("%w: city %s: %w", ErrInvalidResponse, c.NameEn, err)
		}
	}
	return nil
}

// verifyCoverage checks that the served city tables hold exactly the known
// gazetteer cities, matched by id.
func verifyCoverage(served []gazetteer.City) error {
	known := gazetteer.AllCities()
	ids := make(map[string]struct{}, len(served))
	for _, c := range served {
		ids[c.ID] = struct{}{}
	}
	if len(ids) != len(known) {
		return fmt.Errorf("%w: served %d cities, know %d", ErrInvalidResponse, len(ids), len(known))
	}
	for _, c := range known {
		if _, ok := ids[c.ID]; !ok {
			return fmt.Errorf("%w: city %s (%s) not served", ErrInvalidResponse, c.NameEn, c.ID)
		}
	}
	return nil
}

// verifyDuas checks that both dua collections are populated.
func verifyDuas(d gazetteer.DuaCollection) error {
	if len(d.Morning) == 0 || len(d.Evening) == 0 {
		return fmt.Errorf("%w: morning %d, evening %d duas", ErrInvalidResponse, len(d.Morning), len(d.Evening))
	}
	return nil
}

// verifyVerses checks that the verse list is populated with positive references.
func verifyVerses(verses []gazetteer.Verse) error {
	if len(verses) == 0 {
		return fmt.Errorf("%w: empty verse list", ErrInvalidResponse)
	}
	for _, v := range verses {
		if v.SurahNumber < 1 || v.VerseNumber < 1 || v.Arabic == "" {
			return fmt.Errorf("%w: verse %s", ErrInvalidResponse, v.ID)
		}
	}
	return nil
}
