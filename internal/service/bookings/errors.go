package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the remote store has no such booking.
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidStatus is returned when the requested status is not a known one.
	ErrInvalidStatus = errors.New("bookings.service: invalid booking status")

	// ErrInvalidTransition is returned when the booking cannot move to the
	// requested status from its current one.
	ErrInvalidTransition = errors.New("bookings.service: invalid status transition")

	// ErrUpstream is returned when the remote store is unreachable or misbehaves.
	ErrUpstream = errors.New("bookings.service: remote store error")
)
