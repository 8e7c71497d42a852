package get_day_slots

import (
	"context"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// SlotsService serves the slots of one day, refetching the day on its
// first selection. Satisfied by the slots service.
type SlotsService interface {
	DaySlots(ctx context.Context, date time.Time) ([]domain.Slot, error)
}

type Messages interface {
	T(key string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
