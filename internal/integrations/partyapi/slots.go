package partyapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// ListSlots retrieves all slots whose date falls in [from, to].
// Callers pass a bounded window (months back/forward from today) to keep
// the payload size in check.
func (c *Client) ListSlots(ctx context.Context, from, to time.Time) ([]domain.Slot, error) {
	path := fmt.Sprintf("/slots?from=%s&to=%s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	var models []slotModel
	if err := c.do(ctx, "ListSlots", http.MethodGet, path, nil, &models, nil); err != nil {
		return nil, err
	}

	c.log.Info("partyapi: fetched %d slots for window %s..%s",
		len(models), from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	return toDomainSlots(models)
}

// ListSlotsByDay retrieves the slots of exactly one calendar day.
func (c *Client) ListSlotsByDay(ctx context.Context, date time.Time) ([]domain.Slot, error) {
	path := fmt.Sprintf("/slots?date=%s", date.Format(domain.DateFormat))

	var models []slotModel
	if err := c.do(ctx, "ListSlotsByDay", http.MethodGet, path, nil, &models, nil); err != nil {
		return nil, err
	}

	return toDomainSlots(models)
}

// ListSlotsByMonth retrieves the slots of one month, used for lazy
// month-by-month pagination of large slot sets.
func (c *Client) ListSlotsByMonth(ctx context.Context, year int, month time.Month) ([]domain.Slot, error) {
	path := fmt.Sprintf("/slots?year=%d&month=%d", year, int(month))

	var models []slotModel
	if err := c.do(ctx, "ListSlotsByMonth", http.MethodGet, path, nil, &models, nil); err != nil {
		return nil, err
	}

	c.log.Info("partyapi: fetched %d slots for month %s", len(models), domain.MonthKey(year, month))

	return toDomainSlots(models)
}

// CreateSlot creates a single slot and returns it with the store-assigned id.
func (c *Client) CreateSlot(ctx context.Context, draft SlotDraft) (domain.Slot, error) {
	var model slotModel
	if err := c.do(ctx, "CreateSlot", http.MethodPost, "/slots", draft, &model, nil); err != nil {
		return domain.Slot{}, err
	}
	return model.toDomain()
}

// GenerateSlots creates multiple recurring slots from a daily template applied
// to a date range or an explicit list of custom dates. Returns every created slot.
func (c *Client) GenerateSlots(ctx context.Context, batch GenerateBatch) ([]domain.Slot, error) {
	var models []slotModel
	if err := c.do(ctx, "GenerateSlots", http.MethodPost, "/slots/generate", batch, &models, nil); err != nil {
		return nil, err
	}

	c.log.Info("partyapi: generated %d slots", len(models))

	return toDomainSlots(models)
}

// UpdateSlot applies a partial update and returns the authoritative slot state.
func (c *Client) UpdateSlot(ctx context.Context, id int64, patch SlotPatch) (domain.Slot, error) {
	path := fmt.Sprintf("/slots/%d", id)

	var model slotModel
	if err := c.do(ctx, "UpdateSlot", http.MethodPatch, path, patch, &model, ErrSlotNotFound); err != nil {
		return domain.Slot{}, err
	}
	return model.toDomain()
}

// DeleteSlot deletes a slot. A missing id surfaces as ErrSlotNotFound;
// the caller treats that as success (idempotent delete).
func (c *Client) DeleteSlot(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/slots/%d", id)
	return c.do(ctx, "DeleteSlot", http.MethodDelete, path, nil, nil, ErrSlotNotFound)
}
