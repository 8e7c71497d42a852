package update_booking_status

import (
	"context"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// BookingsService moves a booking through its status transitions.
// Satisfied by the bookings service.
type BookingsService interface {
	UpdateStatus(ctx context.Context, id int64, status string) (domain.Booking, error)
}

type Messages interface {
	T(key string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
