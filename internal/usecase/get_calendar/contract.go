package get_calendar

import (
	"context"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// SlotProvider supplies the slots of one month, loading it lazily when
// needed. Satisfied by the slots service.
type SlotProvider interface {
	MonthSlots(ctx context.Context, year int, month time.Month) ([]domain.Slot, error)
}

// Logger is the logging subset the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
