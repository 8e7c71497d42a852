package domain

import "time"

// BookingStatus represents the status of a booking, independent of slot status.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a customer reservation against exactly one slot.
type Booking struct {
	ID     int64
	SlotID int64
	Status BookingStatus

	// Guest contact info
	Name  string
	Phone string
	Email *string

	NumberOfKids int
	Comments     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending reports whether the booking still awaits an administrator decision.
func (b *Booking) IsPending() bool {
	return b.Status == BookingPending
}

// CanTransitionTo reports whether an administrator may move the booking
// to the given status. Only pending bookings are decided; a confirmed
// booking can still be cancelled.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case BookingConfirmed:
		return b.Status == BookingPending
	case BookingCancelled:
		return b.Status == BookingPending || b.Status == BookingConfirmed
	default:
		return false
	}
}

// ValidBookingStatus reports whether s names a known booking status.
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}
