package delete_slots

import (
	"context"

	"github.com/somriures/SC-BookingConsole/internal/service/slots"
)

// SlotsService deletes slots concurrently, each attempt independent.
// Satisfied by the slots service.
type SlotsService interface {
	DeleteMany(ctx context.Context, ids []int64) (slots.BulkDeleteResult, error)
}

type Messages interface {
	T(key string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
