package model

import "errors"

// Sentinel error kinds for this package.
var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidDays       = errors.New("days must be at least 1")
	ErrRangeTooLarge     = errors.New("calendar range too large")
)
