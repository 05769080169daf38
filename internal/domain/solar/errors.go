package solar

import "errors"

// ErrUndefinedHourAngle is returned by HourAngle when the sun does not cross
// the horizon on that day (polar day or polar night). ComputeSunEvents never
// returns it; it becomes a Fallback result instead.
var ErrUndefinedHourAngle = errors.New("hour angle undefined")
