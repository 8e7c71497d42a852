package create_booking

import "errors"

var (
	// ErrSlotNotFound is returned when the target slot is unknown.
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotClosed is returned before any network call when the target
	// slot is administratively closed.
	ErrSlotClosed = errors.New("create_booking: slot is closed")

	// ErrSlotFull is returned before any network call when the target slot
	// has no remaining capacity.
	ErrSlotFull = errors.New("create_booking: slot is full")

	// ErrMissingContact is returned when name or phone is empty.
	ErrMissingContact = errors.New("create_booking: name and phone are required")

	// ErrInvalidKids is returned when the number of kids is out of range.
	ErrInvalidKids = errors.New("create_booking: number of kids out of range")

	// ErrCommentsTooLong is returned when the free-text comment exceeds the limit.
	ErrCommentsTooLong = errors.New("create_booking: comments too long")

	// ErrInternal is returned when the remote submission fails.
	ErrInternal = errors.New("create_booking: internal error")
)
