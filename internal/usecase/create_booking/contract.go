package create_booking

import (
	"context"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/internal/integrations/partyapi"
)

// SlotReader serves the cached slot state the pre-submit checks run
// against, and refreshes the day after a successful submission.
// Satisfied by the slots service.
type SlotReader interface {
	GetSlot(id int64) (domain.Slot, bool)
	RefreshDay(ctx context.Context, date time.Time) error
}

// BookingSubmitter submits the booking to the remote store.
// Satisfied by the Party API client.
type BookingSubmitter interface {
	CreateBooking(ctx context.Context, draft partyapi.BookingDraft) (domain.Booking, error)
}

// Logger is the logging subset the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
