package slots

import "errors"

var (
	// ErrSlotNotFound is returned when the remote store no longer has the slot.
	// The stale cache entry has already been dropped when this is returned.
	ErrSlotNotFound = errors.New("slots.service: slot not found")

	// ErrUpstream is returned when the remote store is unreachable or misbehaves.
	ErrUpstream = errors.New("slots.service: remote store error")

	// ErrPartialDelete is returned by DeleteMany when some deletions failed.
	// The accompanying result carries the succeeded and failed id sets.
	ErrPartialDelete = errors.New("slots.service: some deletions failed")

	// ErrInternal is returned on unexpected internal failures.
	ErrInternal = errors.New("slots.service: internal error")
)
