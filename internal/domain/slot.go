package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/somriures/SC-BookingConsole/pkg/types"
)

// SlotStatus represents the administrative state of a slot.
// It is independent of occupancy: a slot can be open with zero spots
// left (fully booked) or closed with spots remaining (blocked by an admin).
type SlotStatus string

const (
	StatusOpen   SlotStatus = "open"
	StatusClosed SlotStatus = "closed"
)

// SlotKind discriminates the two slot variants.
type SlotKind string

const (
	// KindEvent is a birthday-party slot: fixed start/end timestamps,
	// a booking occupies the whole slot.
	KindEvent SlotKind = "event"

	// KindRecurring is a daycare slot: wall-clock open/close hours
	// with a capacity counter.
	KindRecurring SlotKind = "recurring"
)

var (
	ErrInvalidSlotKind   = errors.New("domain: invalid slot kind")
	ErrInvalidSlotStatus = errors.New("domain: invalid slot status")
	ErrMissingDate       = errors.New("domain: slot date is required")
	ErrMissingTimes      = errors.New("domain: event slot requires start and end time")
	ErrMissingHours      = errors.New("domain: recurring slot requires open and close hour")
	ErrMissingCapacity   = errors.New("domain: recurring slot requires a capacity")
	ErrEndBeforeStart    = errors.New("domain: end must be strictly after start")
	ErrSpotsOutOfRange   = errors.New("domain: available spots must be between 0 and capacity")
)

// Slot is a bookable time window on a calendar day.
type Slot struct {
	ID     int64
	Kind   SlotKind
	Date   time.Time // day granularity, time component ignored
	Status SlotStatus

	// Event variant
	StartTime *time.Time
	EndTime   *time.Time
	Booked    bool

	// Recurring variant
	OpenHour       types.TimeString
	CloseHour      types.TimeString
	Capacity       int
	AvailableSpots int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsEvent reports whether the slot is a birthday-party slot.
func (s *Slot) IsEvent() bool {
	return s.Kind == KindEvent
}

// IsRecurring reports whether the slot is a daycare slot.
func (s *Slot) IsRecurring() bool {
	return s.Kind == KindRecurring
}

// IsOpen reports whether the slot is administratively open.
func (s *Slot) IsOpen() bool {
	return s.Status == StatusOpen
}

// FreeCapacity returns the remaining bookable capacity of the slot,
// regardless of administrative status. An event slot counts as 1 when
// unbooked and 0 when booked.
func (s *Slot) FreeCapacity() int {
	if s.IsEvent() {
		if s.Booked {
			return 0
		}
		return 1
	}
	return s.AvailableSpots
}

// TotalCapacity returns the maximum bookable capacity of the slot.
func (s *Slot) TotalCapacity() int {
	if s.IsEvent() {
		return 1
	}
	return s.Capacity
}

// IsFull reports whether no capacity remains.
func (s *Slot) IsFull() bool {
	return s.FreeCapacity() == 0
}

// IsFullyAvailable reports whether the slot is open and completely unbooked.
func (s *Slot) IsFullyAvailable() bool {
	return s.IsOpen() && s.FreeCapacity() == s.TotalCapacity()
}

// IsBookable reports whether a customer may submit a booking against the slot.
func (s *Slot) IsBookable() bool {
	return s.IsOpen() && !s.IsFull()
}

// StartMinutes returns the slot's start as minutes since midnight,
// used as the secondary sort key inside a day. Malformed recurring
// hours sort first.
func (s *Slot) StartMinutes() int {
	if s.IsEvent() {
		if s.StartTime == nil {
			return 0
		}
		return s.StartTime.Hour()*60 + s.StartTime.Minute()
	}
	m, err := s.OpenHour.Minutes()
	if err != nil {
		return 0
	}
	return m
}

// Validate checks the slot invariants enforced at creation and update time.
func (s *Slot) Validate() error {
	if s.Date.IsZero() {
		return ErrMissingDate
	}

	switch s.Kind {
	case KindEvent:
		if s.StartTime == nil || s.EndTime == nil {
			return ErrMissingTimes
		}
		if !s.EndTime.After(*s.StartTime) {
			return fmt.Errorf("%w: start=%s end=%s", ErrEndBeforeStart,
				s.StartTime.Format(TimeFormat), s.EndTime.Format(TimeFormat))
		}
	case KindRecurring:
		if s.OpenHour.IsZero() || s.CloseHour.IsZero() {
			return ErrMissingHours
		}
		if !s.CloseHour.IsAfter(s.OpenHour) {
			return fmt.Errorf("%w: open=%s close=%s", ErrEndBeforeStart, s.OpenHour, s.CloseHour)
		}
		if s.Capacity < 0 {
			return ErrMissingCapacity
		}
		if s.AvailableSpots < 0 || s.AvailableSpots > s.Capacity {
			return fmt.Errorf("%w: spots=%d capacity=%d", ErrSpotsOutOfRange, s.AvailableSpots, s.Capacity)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSlotKind, s.Kind)
	}

	switch s.Status {
	case StatusOpen, StatusClosed:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSlotStatus, s.Status)
	}

	return nil
}

// DayOf normalizes a timestamp to midnight in its own location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MonthKey builds the "YYYY-MM" key used by the cache to track loaded months.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
