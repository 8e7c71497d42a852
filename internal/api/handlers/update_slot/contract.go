package update_slot

import (
	"context"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/internal/service/slots"
)

// SlotsService applies a partial slot update with optimistic cache
// staging. Satisfied by the slots service.
type SlotsService interface {
	GetSlot(id int64) (domain.Slot, bool)
	Update(ctx context.Context, id int64, req slots.UpdateRequest) (domain.Slot, error)
}

type Messages interface {
	T(key string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
