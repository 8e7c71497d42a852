package create_slot

import (
	"context"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// SlotsService creates one slot remotely and merges it into the cache.
// Satisfied by the slots service.
type SlotsService interface {
	Create(ctx context.Context, draft domain.Slot) (domain.Slot, error)
}

type Messages interface {
	T(key string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
