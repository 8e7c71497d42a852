package get_calendar

import "errors"

var (
	// ErrInvalidMonth is returned for a month outside 1..12 or a non-positive year.
	ErrInvalidMonth = errors.New("get_calendar: invalid year or month")

	// ErrInternal is returned when the slot provider fails.
	ErrInternal = errors.New("get_calendar: internal error")
)
