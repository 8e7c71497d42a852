package get_schedule

import "errors"

var (
	// ErrInvalidRange is returned when the month range is malformed or inverted.
	ErrInvalidRange = errors.New("get_schedule: invalid month range")

	// ErrInternal is returned when the slot provider fails.
	ErrInternal = errors.New("get_schedule: internal error")
)
