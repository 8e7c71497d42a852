package get_calendar

import (
	"context"
	"fmt"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// UseCase computes the calendar statistics of one month.
type UseCase struct {
	slotProvider SlotProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(slotProvider SlotProvider, logger Logger) *UseCase {
	return &UseCase{
		slotProvider: slotProvider,
		logger:       logger,
	}
}

// Execute loads the month's slots (from cache when already merged) and
// derives the per-day statistics and coloring sets.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Year <= 0 || req.Month < 1 || req.Month > 12 {
		uc.logger.Warn("GetCalendar: invalid month %d-%d", req.Year, req.Month)
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidMonth, req.Year, req.Month)
	}

	slots, err := uc.slotProvider.MonthSlots(ctx, req.Year, req.Month)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to load month %s: %v",
			domain.MonthKey(req.Year, req.Month), err)
		return nil, fmt.Errorf("%w: failed to load month: %v", ErrInternal, err)
	}

	stats := buildDayStats(slots, req.Year, req.Month)
	available, booked := daySets(stats)

	uc.logger.Info("GetCalendar: %s has %d days with slots", domain.MonthKey(req.Year, req.Month), len(stats))

	return &Response{
		Year:          req.Year,
		Month:         req.Month,
		Days:          stats,
		AvailableDays: available,
		BookedDays:    booked,
	}, nil
}
