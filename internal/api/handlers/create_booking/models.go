package create_booking

import (
	createBooking "github.com/somriures/SC-BookingConsole/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID       int64   `json:"slotId"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        *string `json:"email,omitempty"`
	NumberOfKids int     `json:"numberOfKids"`
	Comments     *string `json:"comments,omitempty"`
}

// ToUseCaseRequest converts the HTTP request to the use case model.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		SlotID:       r.SlotID,
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		NumberOfKids: r.NumberOfKids,
		Comments:     r.Comments,
	}
}
