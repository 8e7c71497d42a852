package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/internal/integrations/partyapi"
)

// Service covers the administrator side of bookings: listing a day's
// bookings and deciding pending ones. Customer submission lives in the
// create_booking use case.
type Service struct {
	api    BookingAPI
	logger Logger
}

// NewService creates the bookings service.
func NewService(api BookingAPI, logger Logger) *Service {
	return &Service{
		api:    api,
		logger: logger,
	}
}

// ListByDate returns the bookings whose slot falls on the given day.
func (s *Service) ListByDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	bookings, err := s.api.ListBookingsByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: fetch %s failed: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate: %v", ErrUpstream, err)
	}

	s.logger.Info("ListByDate: %d bookings for %s", len(bookings), date.Format(domain.DateFormat))
	return bookings, nil
}

// UpdateStatus transitions a booking to the given status. The transition
// rules are checked against the current remote state before the mutation,
// so an already-decided booking is rejected without a write.
//
// Cancelling a booking does not restore slot capacity; the remote store
// owns capacity bookkeeping.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (domain.Booking, error) {
	if !domain.ValidBookingStatus(status) {
		s.logger.Warn("UpdateStatus: invalid status %q for booking id=%d", status, id)
		return domain.Booking{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	next := domain.BookingStatus(status)

	current, err := s.api.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, partyapi.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return domain.Booking{}, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: failed to get booking id=%d: %v", id, err)
		return domain.Booking{}, fmt.Errorf("%w: UpdateStatus: %v", ErrUpstream, err)
	}

	if !current.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: booking id=%d cannot go %s -> %s", id, current.Status, next)
		return domain.Booking{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
	}

	updated, err := s.api.UpdateBookingStatus(ctx, id, next)
	if err != nil {
		if errors.Is(err, partyapi.ErrBookingNotFound) {
			return domain.Booking{}, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: remote update failed for booking id=%d: %v", id, err)
		return domain.Booking{}, fmt.Errorf("%w: UpdateStatus: %v", ErrUpstream, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d now %s", id, updated.Status)
	return updated, nil
}

// Delete removes a booking. A remote 404 counts as success.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteBooking(ctx, id); err != nil {
		if errors.Is(err, partyapi.ErrBookingNotFound) {
			return nil
		}
		s.logger.Error("Delete: remote delete failed for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete: %v", ErrUpstream, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}
