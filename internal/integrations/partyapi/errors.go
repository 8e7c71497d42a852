package partyapi

import "errors"

var (
	// ErrSlotNotFound is returned when the remote store has no slot with the given id.
	ErrSlotNotFound = errors.New("partyapi client: slot not found")

	// ErrBookingNotFound is returned when the remote store has no booking with the given id.
	ErrBookingNotFound = errors.New("partyapi client: booking not found")

	// ErrUnavailable is returned on transport failures and unexpected non-2xx responses.
	// The caller decides whether to retry; the client never retries on its own.
	ErrUnavailable = errors.New("partyapi client: remote store unavailable")

	// ErrInvalidResponse is returned when the remote store answers with a body
	// the client cannot decode.
	ErrInvalidResponse = errors.New("partyapi client: invalid response")

	// ErrInternal is returned on request construction failures.
	ErrInternal = errors.New("partyapi client: internal error")
)
