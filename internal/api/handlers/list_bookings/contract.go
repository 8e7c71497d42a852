package list_bookings

import (
	"context"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// BookingsService lists the bookings of one day.
// Satisfied by the bookings service.
type BookingsService interface {
	ListByDate(ctx context.Context, date time.Time) ([]domain.Booking, error)
}

type Messages interface {
	T(key string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
