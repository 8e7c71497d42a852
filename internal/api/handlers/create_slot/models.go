package create_slot

import (
	"fmt"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/pkg/types"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	Kind   string `json:"kind"`
	Date   string `json:"date"` // "2024-07-01"
	Status string `json:"status,omitempty"`

	// Event variant
	StartTime string `json:"startTime,omitempty"` // "17:00"
	EndTime   string `json:"endTime,omitempty"`

	// Recurring variant
	OpenHour       string `json:"openHour,omitempty"`
	CloseHour      string `json:"closeHour,omitempty"`
	Capacity       *int   `json:"capacity,omitempty"`
	AvailableSpots *int   `json:"availableSpots,omitempty"`
}

// ToDraft converts the HTTP request to a domain slot draft. Field-level
// business validation happens in the service; this only parses.
func (r *CreateSlotRequest) ToDraft() (domain.Slot, error) {
	draft := domain.Slot{
		Kind:   domain.SlotKind(r.Kind),
		Status: domain.SlotStatus(r.Status),
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return domain.Slot{}, fmt.Errorf("parse date: %w", err)
		}
		draft.Date = date
	}

	if r.StartTime != "" {
		st, err := parseTimeOn(draft.Date, r.StartTime)
		if err != nil {
			return domain.Slot{}, err
		}
		draft.StartTime = &st
	}
	if r.EndTime != "" {
		et, err := parseTimeOn(draft.Date, r.EndTime)
		if err != nil {
			return domain.Slot{}, err
		}
		draft.EndTime = &et
	}

	if r.OpenHour != "" {
		open, err := types.NewTimeStringFromString(r.OpenHour)
		if err != nil {
			return domain.Slot{}, fmt.Errorf("parse open hour: %w", err)
		}
		draft.OpenHour = open
	}
	if r.CloseHour != "" {
		close, err := types.NewTimeStringFromString(r.CloseHour)
		if err != nil {
			return domain.Slot{}, fmt.Errorf("parse close hour: %w", err)
		}
		draft.CloseHour = close
	}
	if r.Capacity != nil {
		draft.Capacity = *r.Capacity
	}
	// An omitted spots field means a fresh slot; an explicit 0 means a
	// deliberately fully-booked one and is kept.
	draft.AvailableSpots = draft.Capacity
	if r.AvailableSpots != nil {
		draft.AvailableSpots = *r.AvailableSpots
	}

	return draft, nil
}

func parseTimeOn(date time.Time, raw string) (time.Time, error) {
	ts, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time: %w", err)
	}
	return ts.OnDate(date)
}
