package update_slot

import (
	"fmt"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/internal/service/slots"
	"github.com/somriures/SC-BookingConsole/pkg/types"
)

// UpdateSlotRequest HTTP request model. Absent fields stay untouched.
type UpdateSlotRequest struct {
	Status *string `json:"status,omitempty"`

	// Event variant. Times are "HH:MM" on the slot's own date.
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`

	// Recurring variant
	OpenHour       *string `json:"openHour,omitempty"`
	CloseHour      *string `json:"closeHour,omitempty"`
	Capacity       *int    `json:"capacity,omitempty"`
	AvailableSpots *int    `json:"availableSpots,omitempty"`
}

// ToUpdateRequest converts the HTTP request to the service model. The
// slot's date anchors the event time fields.
func (r *UpdateSlotRequest) ToUpdateRequest(date time.Time) (slots.UpdateRequest, error) {
	var out slots.UpdateRequest

	if r.Status != nil {
		status := domain.SlotStatus(*r.Status)
		out.Status = &status
	}

	if r.Date != nil {
		parsed, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return out, fmt.Errorf("parse date: %w", err)
		}
		date = parsed
	}

	if r.StartTime != nil {
		st, err := parseTimeOn(date, *r.StartTime)
		if err != nil {
			return out, err
		}
		out.StartTime = &st
	}
	if r.EndTime != nil {
		et, err := parseTimeOn(date, *r.EndTime)
		if err != nil {
			return out, err
		}
		out.EndTime = &et
	}

	if r.OpenHour != nil {
		open, err := types.NewTimeStringFromString(*r.OpenHour)
		if err != nil {
			return out, fmt.Errorf("parse open hour: %w", err)
		}
		out.OpenHour = &open
	}
	if r.CloseHour != nil {
		close, err := types.NewTimeStringFromString(*r.CloseHour)
		if err != nil {
			return out, fmt.Errorf("parse close hour: %w", err)
		}
		out.CloseHour = &close
	}

	out.Capacity = r.Capacity
	out.AvailableSpots = r.AvailableSpots
	return out, nil
}

func parseTimeOn(date time.Time, raw string) (time.Time, error) {
	ts, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time: %w", err)
	}
	return ts.OnDate(date)
}
