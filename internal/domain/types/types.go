// Package types contains the response shapes shared by the HTTP API, the
// service and the smoke client.
package types

// PrayerTimes is one day's schedule rendered as 12-hour clock values.
type PrayerTimes struct {
	Fajr          string `json:"fajr"`
	Sunrise       string `json:"sunrise"`
	Dhuhr         string `json:"dhuhr"`
	Asr           string `json:"asr"`
	Maghrib       string `json:"maghrib"`
	Isha          string `json:"isha"`
	Date          string `json:"date"`
	City          string `json:"city"`
	CurrentPrayer string `json:"current_prayer,omitempty"`
	Source        string `json:"source"`
	Reason        string `json:"reason,omitempty"`
}

// Times returns the six clock values in daily order.
func (p PrayerTimes) Times() [6]string {
	return [6]string{p.Fajr, p.Sunrise, p.Dhuhr, p.Asr, p.Maghrib, p.Isha}
}

// PrayerCalendar is a run of consecutive daily schedules for one place.
type PrayerCalendar struct {
	Latitude  float64       `json:"lat"`
	Longitude float64       `json:"lng"`
	City      string        `json:"city"`
	Days      []PrayerTimes `json:"days"`
}

// Qibla is the bearing toward the Kaaba from a coordinate.
type Qibla struct {
	Direction float64 `json:"qibla_direction"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Health is the liveness response.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
