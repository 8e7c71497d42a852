package create_booking

import "github.com/somriures/SC-BookingConsole/internal/domain"

// Request is a customer booking submission against one slot.
type Request struct {
	SlotID       int64
	Name         string
	Phone        string
	Email        *string
	NumberOfKids int
	Comments     *string
}

// Response returns the stored booking.
type Response struct {
	Booking domain.Booking
}
