package slots

import (
	"context"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/internal/integrations/partyapi"
)

// PartyAPI is the remote store subset the slots service needs.
type PartyAPI interface {
	ListSlots(ctx context.Context, from, to time.Time) ([]domain.Slot, error)
	ListSlotsByDay(ctx context.Context, date time.Time) ([]domain.Slot, error)
	ListSlotsByMonth(ctx context.Context, year int, month time.Month) ([]domain.Slot, error)
	CreateSlot(ctx context.Context, draft partyapi.SlotDraft) (domain.Slot, error)
	GenerateSlots(ctx context.Context, batch partyapi.GenerateBatch) ([]domain.Slot, error)
	UpdateSlot(ctx context.Context, id int64, patch partyapi.SlotPatch) (domain.Slot, error)
	DeleteSlot(ctx context.Context, id int64) error
}

// MetricsObserver receives cache size updates. Nil when metrics are disabled.
type MetricsObserver interface {
	SetCacheSize(slots, months int)
}

// Logger is the logging subset the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
