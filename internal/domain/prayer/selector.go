package prayer

// SelectCurrent returns the first prayer, in daily order, whose time is
// strictly after now. Once isha has passed the next day's fajr is returned.
func SelectCurrent(s Schedule, now TimeOfDay) Name {
	for _, in := range s.Instants {
		if in.Time > now {
			return in.Name
		}
	}
	return Fajr
}
