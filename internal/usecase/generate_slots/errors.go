package generate_slots

import "errors"

var (
	// ErrInvalidTemplate is returned when the daily template is malformed.
	ErrInvalidTemplate = errors.New("generate_slots: invalid template")

	// ErrInvalidDates is returned when neither mode is usable: no range and
	// no custom dates, both at once, or unparseable dates.
	ErrInvalidDates = errors.New("generate_slots: invalid dates")

	// ErrTooManyDates is returned when the expansion exceeds the per-request bound.
	ErrTooManyDates = errors.New("generate_slots: too many dates")

	// ErrInternal is returned when the remote generation fails.
	ErrInternal = errors.New("generate_slots: internal error")
)
