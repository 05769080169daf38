package prayer

import (
	"github.com/okian/salat/internal/domain/model"
	"github.com/okian/salat/internal/domain/solar"
)

// Name identifies one of the six daily instants.
type Name string

const (
	Fajr    Name = "fajr"
	Sunrise Name = "sunrise"
	Dhuhr   Name = "dhuhr"
	Asr     Name = "asr"
	Maghrib Name = "maghrib"
	Isha    Name = "isha"
)

// Count is the number of instants in a schedule.
const Count = 6

// Names returns the instants in their daily order.
func Names() [Count]Name {
	return [Count]Name{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}
}

// Valid reports whether n names one of the six instants.
func (n Name) Valid() bool {
	for _, known := range Names() {
		if n == known {
			return true
		}
	}
	return false
}

// Source tells whether a schedule was derived from the sun or substituted.
type Source string

const (
	SourceComputed Source = "computed"
	SourceFallback Source = "fallback"
)

// Reason explains a fallback schedule.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonUndefinedHourAngle Reason = "undefined_hour_angle"
	ReasonDegenerateOrder    Reason = "degenerate_order"
)

type anchor int

const (
	atSunrise anchor = iota
	atNoon
	atSunset
)

// offsets from the sun events, in hours, in daily order.
var offsets = [Count]struct {
	name   Name
	anchor anchor
	hours  float64
}{
	{Fajr, atSunrise, -1.5},
	{Sunrise, atSunrise, 0},
	{Dhuhr, atNoon, 0.083},
	{Asr, atNoon, 3.5},
	{Maghrib, atSunset, 0.05},
	{Isha, atSunset, 1.75},
}

// fallbackHours is the fixed local clock schedule used when the sun gives no
// usable events.
var fallbackHours = [Count]float64{5.5, 6.75, 12.25, 15.5, 18.25, 19.75}

// Instant is one named time in a schedule. Hours keeps the unwrapped value the
// time was derived from; Time is the normalized clock value.
type Instant struct {
	Name  Name
	Hours float64
	Time  TimeOfDay
}

func newInstant(name Name, hours float64) Instant {
	return Instant{Name: name, Hours: hours, Time: FromHours(hours)}
}

// Schedule is the ordered set of six instants for one date and place.
type Schedule struct {
	Date     model.CalendarDate
	Location string
	Source   Source
	Reason   Reason
	Instants [Count]Instant
}

// Build derives the schedule for date from the solver result. It always
// returns six ordered instants: when the sun gives no events, or the fixed
// offsets would invert them on a very short day, the fixed fallback schedule
// is used instead. Equal instants stay in definition order.
func Build(r solar.Result, date model.CalendarDate) Schedule {
	ev, ok := r.Events()
	if !ok {
		return fallback(date, ReasonUndefinedHourAngle)
	}

	s := Schedule{Date: date, Source: SourceComputed}
	for i, o := range offsets {
		var base float64
		switch o.anchor {
		case atSunrise:
			base = ev.Sunrise
		case atNoon:
			base = ev.SolarNoon
		case atSunset:
			base = ev.Sunset
		}
		s.Instants[i] = newInstant(o.name, base+o.hours)
	}
	if !s.Ordered() {
		return fallback(date, ReasonDegenerateOrder)
	}
	return s
}

func fallback(date model.CalendarDate, reason Reason) Schedule {
	s := Schedule{Date: date, Source: SourceFallback, Reason: reason}
	for i, name := range Names() {
		s.Instants[i] = newInstant(name, fallbackHours[i])
	}
	return s
}

// Ordered reports whether no instant precedes the one before it on their
// unwrapped values, at the one-second resolution they are stored with.
func (s Schedule) Ordered() bool {
	for i := 1; i < Count; i++ {
		if unwrappedSeconds(s.Instants[i].Hours) < unwrappedSeconds(s.Instants[i-1].Hours) {
			return false
		}
	}
	return true
}

// Instant returns the instant with the given name.
func (s Schedule) Instant(name Name) (Instant, bool) {
	for _, in := range s.Instants {
		if in.Name == name {
			return in, true
		}
	}
	return Instant{}, false
}

// Located returns a copy of s labeled with a place name.
func (s Schedule) Located(label string) Schedule {
	s.Location = label
	return s
}

// Format renders every instant as a 12-hour clock value.
func (s Schedule) Format(m Meridiem) [Count]string {
	var out [Count]string
	for i, in := range s.Instants {
		out[i] = in.Time.Format12(m)
	}
	return out
}
