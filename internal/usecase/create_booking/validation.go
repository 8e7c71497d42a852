package create_booking

import (
	"fmt"
	"strings"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// validateRequest checks the submission fields. Pure: the slot state
// checks live in the use case, against the cached slot.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		return ErrMissingContact
	}
	if req.NumberOfKids < domain.MinNumberOfKids || req.NumberOfKids > domain.MaxNumberOfKids {
		return fmt.Errorf("%w: %d out of [%d, %d]", ErrInvalidKids,
			req.NumberOfKids, domain.MinNumberOfKids, domain.MaxNumberOfKids)
	}
	if req.Comments != nil && len(*req.Comments) > domain.MaxCommentsLength {
		return fmt.Errorf("%w: %d chars, max %d", ErrCommentsTooLong,
			len(*req.Comments), domain.MaxCommentsLength)
	}
	return nil
}

// checkSlot rejects submissions against slots that cannot take them,
// before any network call.
func checkSlot(slot domain.Slot) error {
	if !slot.IsOpen() {
		return fmt.Errorf("%w: slot id=%d", ErrSlotClosed, slot.ID)
	}
	if slot.IsFull() {
		return fmt.Errorf("%w: slot id=%d", ErrSlotFull, slot.ID)
	}
	return nil
}
