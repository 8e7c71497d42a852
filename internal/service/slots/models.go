package slots

import (
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/internal/integrations/partyapi"
	"github.com/somriures/SC-BookingConsole/pkg/types"
)

// UpdateRequest is a partial slot update. Nil fields are left untouched.
type UpdateRequest struct {
	Status *domain.SlotStatus

	// Event variant
	StartTime *time.Time
	EndTime   *time.Time

	// Recurring variant
	OpenHour       *types.TimeString
	CloseHour      *types.TimeString
	Capacity       *int
	AvailableSpots *int
}

// applyTo patches a slot copy in place, for optimistic staging and
// pre-network validation.
func (r *UpdateRequest) applyTo(s *domain.Slot) {
	if r.Status != nil {
		s.Status = *r.Status
	}
	if r.StartTime != nil {
		s.StartTime = r.StartTime
	}
	if r.EndTime != nil {
		s.EndTime = r.EndTime
	}
	if r.OpenHour != nil {
		s.OpenHour = *r.OpenHour
	}
	if r.CloseHour != nil {
		s.CloseHour = *r.CloseHour
	}
	if r.Capacity != nil {
		s.Capacity = *r.Capacity
	}
	if r.AvailableSpots != nil {
		s.AvailableSpots = *r.AvailableSpots
	}
}

// toWire converts the request to the remote store's patch payload.
func (r *UpdateRequest) toWire() partyapi.SlotPatch {
	patch := partyapi.SlotPatch{
		Status:         r.Status,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Capacity:       r.Capacity,
		AvailableSpots: r.AvailableSpots,
	}
	if r.OpenHour != nil {
		v := r.OpenHour.String()
		patch.OpenHour = &v
	}
	if r.CloseHour != nil {
		v := r.CloseHour.String()
		patch.CloseHour = &v
	}
	return patch
}

// GenerateRequest asks the remote store to create one recurring slot per
// day, from a shared template. Exactly one of the date range or the custom
// date list is set; callers validate that before reaching the service.
type GenerateRequest struct {
	OpenHour  types.TimeString
	CloseHour types.TimeString
	Capacity  int
	Status    domain.SlotStatus

	FromDate    time.Time
	ToDate      time.Time
	CustomDates []time.Time
}

// toWire converts the request to the remote store's batch payload.
func (r *GenerateRequest) toWire() partyapi.GenerateBatch {
	batch := partyapi.GenerateBatch{
		Template: partyapi.SlotTemplate{
			OpenHour:  r.OpenHour.String(),
			CloseHour: r.CloseHour.String(),
			Capacity:  r.Capacity,
			Status:    r.Status,
		},
	}
	if len(r.CustomDates) > 0 {
		batch.CustomDates = make([]string, 0, len(r.CustomDates))
		for _, d := range r.CustomDates {
			batch.CustomDates = append(batch.CustomDates, d.Format(domain.DateFormat))
		}
		return batch
	}
	batch.FromDate = r.FromDate.Format(domain.DateFormat)
	batch.ToDate = r.ToDate.Format(domain.DateFormat)
	return batch
}

// BulkDeleteResult reports the outcome of a DeleteMany call.
type BulkDeleteResult struct {
	Deleted []int64
	Failed  []BulkDeleteFailure
}

// BulkDeleteFailure is one failed deletion within a bulk call.
type BulkDeleteFailure struct {
	ID  int64
	Err error
}
