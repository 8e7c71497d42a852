package bookings

import (
	"context"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// BookingAPI is the remote store subset the bookings service needs.
type BookingAPI interface {
	GetBooking(ctx context.Context, id int64) (domain.Booking, error)
	ListBookingsByDate(ctx context.Context, date time.Time) ([]domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (domain.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

// Logger is the logging subset the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
