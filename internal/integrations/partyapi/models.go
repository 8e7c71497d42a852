package partyapi

import (
	"fmt"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/pkg/types"
)

// slotModel is the wire representation of a slot in the remote store.
type slotModel struct {
	ID     int64  `json:"id"`
	Kind   string `json:"kind"`
	Date   string `json:"date"` // YYYY-MM-DD
	Status string `json:"status"`

	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Booked    bool       `json:"booked"`

	OpenHour       string `json:"open_hour,omitempty"`
	CloseHour      string `json:"close_hour,omitempty"`
	Capacity       int    `json:"capacity"`
	AvailableSpots int    `json:"available_spots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *slotModel) toDomain() (domain.Slot, error) {
	date, err := time.Parse(domain.DateFormat, m.Date)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("%w: bad slot date %q: %v", ErrInvalidResponse, m.Date, err)
	}

	return domain.Slot{
		ID:             m.ID,
		Kind:           domain.SlotKind(m.Kind),
		Date:           date,
		Status:         domain.SlotStatus(m.Status),
		StartTime:      m.StartTime,
		EndTime:        m.EndTime,
		Booked:         m.Booked,
		OpenHour:       types.TimeString(m.OpenHour),
		CloseHour:      types.TimeString(m.CloseHour),
		Capacity:       m.Capacity,
		AvailableSpots: m.AvailableSpots,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}

func toDomainSlots(models []slotModel) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0, len(models))
	for i := range models {
		s, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}

// SlotDraft is the create payload for a single slot.
type SlotDraft struct {
	Kind   domain.SlotKind   `json:"kind"`
	Date   string            `json:"date"`
	Status domain.SlotStatus `json:"status"`

	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	OpenHour       string `json:"open_hour,omitempty"`
	CloseHour      string `json:"close_hour,omitempty"`
	Capacity       int    `json:"capacity"`
	AvailableSpots int    `json:"available_spots"`
}

// DraftFromSlot builds the create payload from a validated domain slot.
func DraftFromSlot(s domain.Slot) SlotDraft {
	return SlotDraft{
		Kind:           s.Kind,
		Date:           s.Date.Format(domain.DateFormat),
		Status:         s.Status,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		OpenHour:       s.OpenHour.String(),
		CloseHour:      s.CloseHour.String(),
		Capacity:       s.Capacity,
		AvailableSpots: s.AvailableSpots,
	}
}

// SlotPatch is the partial update payload. Nil fields are left untouched
// by the remote store.
type SlotPatch struct {
	Status *domain.SlotStatus `json:"status,omitempty"`

	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	OpenHour       *string `json:"open_hour,omitempty"`
	CloseHour      *string `json:"close_hour,omitempty"`
	Capacity       *int    `json:"capacity,omitempty"`
	AvailableSpots *int    `json:"available_spots,omitempty"`
}

// GenerateBatch is the bulk-generation payload: one daily template applied
// to either an inclusive date range or an explicit list of custom dates.
type GenerateBatch struct {
	Template    SlotTemplate `json:"template"`
	FromDate    string       `json:"from_date,omitempty"`
	ToDate      string       `json:"to_date,omitempty"`
	CustomDates []string     `json:"custom_dates,omitempty"`
}

// SlotTemplate is the per-day recurring slot template used by bulk generation.
type SlotTemplate struct {
	OpenHour  string            `json:"open_hour"`
	CloseHour string            `json:"close_hour"`
	Capacity  int               `json:"capacity"`
	Status    domain.SlotStatus `json:"status"`
}

// bookingModel is the wire representation of a booking.
type bookingModel struct {
	ID           int64   `json:"id"`
	SlotID       int64   `json:"slot_id"`
	Status       string  `json:"status"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        *string `json:"email,omitempty"`
	NumberOfKids int     `json:"number_of_kids"`
	Comments     *string `json:"comments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *bookingModel) toDomain() domain.Booking {
	return domain.Booking{
		ID:           m.ID,
		SlotID:       m.SlotID,
		Status:       domain.BookingStatus(m.Status),
		Name:         m.Name,
		Phone:        m.Phone,
		Email:        m.Email,
		NumberOfKids: m.NumberOfKids,
		Comments:     m.Comments,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// BookingDraft is the booking create payload.
type BookingDraft struct {
	SlotID       int64   `json:"slot_id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        *string `json:"email,omitempty"`
	NumberOfKids int     `json:"number_of_kids"`
	Comments     *string `json:"comments,omitempty"`
}

// ErrorResponse is the error body shape of the remote store.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
