package delete_booking

import "context"

// BookingsService removes a booking. Satisfied by the bookings service.
type BookingsService interface {
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
