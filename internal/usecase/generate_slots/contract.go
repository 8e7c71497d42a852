package generate_slots

import (
	"context"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/internal/service/slots"
)

// SlotGenerator performs the remote bulk creation and cache merge.
// Satisfied by the slots service.
type SlotGenerator interface {
	Generate(ctx context.Context, req slots.GenerateRequest) ([]domain.Slot, error)
}

// Logger is the logging subset the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
