package prayer

import "errors"

// Sentinel error kinds for this package.
var (
	ErrInvalidClock = errors.New("invalid clock value")
)
