package delete_slot

import "context"

// SlotsService deletes one slot with optimistic cache staging.
// Satisfied by the slots service.
type SlotsService interface {
	Delete(ctx context.Context, id int64) error
}

type Messages interface {
	T(key string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
