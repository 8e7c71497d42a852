package partyapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// CreateBooking submits a customer booking against a slot.
func (c *Client) CreateBooking(ctx context.Context, draft BookingDraft) (domain.Booking, error) {
	var model bookingModel
	if err := c.do(ctx, "CreateBooking", http.MethodPost, "/bookings", draft, &model, ErrSlotNotFound); err != nil {
		return domain.Booking{}, err
	}

	c.log.Info("partyapi: created booking id=%d slot=%d", model.ID, model.SlotID)

	return model.toDomain(), nil
}

// ListBookingsByDate retrieves the bookings whose slot falls on the given day.
func (c *Client) ListBookingsByDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	path := fmt.Sprintf("/bookings?date=%s", date.Format(domain.DateFormat))

	var models []bookingModel
	if err := c.do(ctx, "ListBookingsByDate", http.MethodGet, path, nil, &models, nil); err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(models))
	for i := range models {
		bookings = append(bookings, models[i].toDomain())
	}
	return bookings, nil
}

// GetBooking retrieves one booking by id.
func (c *Client) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	path := fmt.Sprintf("/bookings/%d", id)

	var model bookingModel
	if err := c.do(ctx, "GetBooking", http.MethodGet, path, nil, &model, ErrBookingNotFound); err != nil {
		return domain.Booking{}, err
	}
	return model.toDomain(), nil
}

// UpdateBookingStatus transitions a booking to the given status and returns
// the authoritative booking state.
func (c *Client) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (domain.Booking, error) {
	path := fmt.Sprintf("/bookings/%d/status", id)
	body := map[string]string{"status": string(status)}

	var model bookingModel
	if err := c.do(ctx, "UpdateBookingStatus", http.MethodPatch, path, body, &model, ErrBookingNotFound); err != nil {
		return domain.Booking{}, err
	}
	return model.toDomain(), nil
}

// DeleteBooking removes a booking. Deleting a booking does not restore
// slot capacity; the remote store owns that reconciliation if it ever
// becomes part of the contract.
func (c *Client) DeleteBooking(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/bookings/%d", id)
	return c.do(ctx, "DeleteBooking", http.MethodDelete, path, nil, nil, ErrBookingNotFound)
}
