package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/somriures/SC-BookingConsole/internal/integrations/partyapi"
)

// UseCase submits a customer booking against an open slot.
type UseCase struct {
	slots     SlotReader
	submitter BookingSubmitter
	logger    Logger
}

// NewUseCase creates the use case.
func NewUseCase(slots SlotReader, submitter BookingSubmitter, logger Logger) *UseCase {
	return &UseCase{
		slots:     slots,
		submitter: submitter,
		logger:    logger,
	}
}

// Execute validates the submission and the target slot's cached state
// before any network call: a closed or full slot is rejected locally. On
// success the slot's day is refetched so the cache reflects the new
// occupancy.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	slot, ok := uc.slots.GetSlot(req.SlotID)
	if !ok {
		uc.logger.Warn("CreateBooking: unknown slot id=%d", req.SlotID)
		return nil, fmt.Errorf("%w: id=%d", ErrSlotNotFound, req.SlotID)
	}
	if err := checkSlot(slot); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	booking, err := uc.submitter.CreateBooking(ctx, partyapi.BookingDraft{
		SlotID:       req.SlotID,
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        req.Email,
		NumberOfKids: req.NumberOfKids,
		Comments:     req.Comments,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: submission failed for slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Occupancy changed remotely; refetch the day rather than guessing.
	if err := uc.slots.RefreshDay(ctx, slot.Date); err != nil {
		uc.logger.Warn("CreateBooking: day refresh failed after booking id=%d: %v", booking.ID, err)
	}

	uc.logger.Info("CreateBooking: booking id=%d slot=%d kids=%d", booking.ID, booking.SlotID, booking.NumberOfKids)
	return &Response{Booking: booking}, nil
}
