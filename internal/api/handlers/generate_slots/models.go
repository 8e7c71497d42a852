package generate_slots

import (
	"github.com/somriures/SC-BookingConsole/internal/api/handlers"
	generateSlots "github.com/somriures/SC-BookingConsole/internal/usecase/generate_slots"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	OpenHour  string `json:"openHour"`  // "10:00"
	CloseHour string `json:"closeHour"` // "20:00"
	Capacity  int    `json:"capacity"`
	Status    string `json:"status,omitempty"`

	FromDate    string   `json:"fromDate,omitempty"` // "2024-07-01"
	ToDate      string   `json:"toDate,omitempty"`
	CustomDates []string `json:"customDates,omitempty"`
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	Message string              `json:"message"`
	Created []handlers.SlotView `json:"created"`
}

// ToUseCaseRequest converts the HTTP request to the use case model.
func (r *GenerateSlotsRequest) ToUseCaseRequest() *generateSlots.Request {
	return &generateSlots.Request{
		OpenHour:    r.OpenHour,
		CloseHour:   r.CloseHour,
		Capacity:    r.Capacity,
		Status:      r.Status,
		FromDate:    r.FromDate,
		ToDate:      r.ToDate,
		CustomDates: r.CustomDates,
	}
}
