package handlers

import (
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// SlotView is the JSON shape slots take everywhere in the API. Variant
// fields are pointers so the other variant's fields stay out of the body.
type SlotView struct {
	ID     int64  `json:"id"`
	Kind   string `json:"kind"`
	Date   string `json:"date"`
	Status string `json:"status"`

	// Event variant
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Booked    *bool   `json:"booked,omitempty"`

	// Recurring variant
	OpenHour       *string `json:"openHour,omitempty"`
	CloseHour      *string `json:"closeHour,omitempty"`
	Capacity       *int    `json:"capacity,omitempty"`
	AvailableSpots *int    `json:"availableSpots,omitempty"`
}

// NewSlotView converts a domain slot to its JSON shape.
func NewSlotView(s domain.Slot) SlotView {
	view := SlotView{
		ID:     s.ID,
		Kind:   string(s.Kind),
		Date:   s.Date.Format(domain.DateFormat),
		Status: string(s.Status),
	}

	if s.IsEvent() {
		if s.StartTime != nil {
			v := s.StartTime.Format(domain.TimeFormat)
			view.StartTime = &v
		}
		if s.EndTime != nil {
			v := s.EndTime.Format(domain.TimeFormat)
			view.EndTime = &v
		}
		booked := s.Booked
		view.Booked = &booked
		return view
	}

	open, close := s.OpenHour.String(), s.CloseHour.String()
	capacity, spots := s.Capacity, s.AvailableSpots
	view.OpenHour = &open
	view.CloseHour = &close
	view.Capacity = &capacity
	view.AvailableSpots = &spots
	return view
}

// NewSlotViews converts a slot list, preserving order.
func NewSlotViews(slots []domain.Slot) []SlotView {
	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, NewSlotView(s))
	}
	return views
}

// BookingView is the JSON shape bookings take everywhere in the API.
type BookingView struct {
	ID           int64   `json:"id"`
	SlotID       int64   `json:"slotId"`
	Status       string  `json:"status"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        *string `json:"email,omitempty"`
	NumberOfKids int     `json:"numberOfKids"`
	Comments     *string `json:"comments,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// NewBookingView converts a domain booking to its JSON shape.
func NewBookingView(b domain.Booking) BookingView {
	return BookingView{
		ID:           b.ID,
		SlotID:       b.SlotID,
		Status:       string(b.Status),
		Name:         b.Name,
		Phone:        b.Phone,
		Email:        b.Email,
		NumberOfKids: b.NumberOfKids,
		Comments:     b.Comments,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}
