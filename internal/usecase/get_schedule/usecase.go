package get_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// maxRangeMonths bounds a single schedule request.
const maxRangeMonths = 36

// UseCase builds the grouped week/month schedule view.
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

// Execute walks every month in the inclusive range, loading each lazily,
// and produces the grouped listing. Months without slots still appear.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRange(req); err != nil {
		uc.logger.Warn("GetSchedule: %v", err)
		return nil, err
	}

	from := time.Date(req.FromYear, req.FromMonth, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(req.ToYear, req.ToMonth, 1, 0, 0, 0, 0, time.UTC)

	months := make([]MonthGroup, 0)
	for cursor := from; !cursor.After(to); cursor = cursor.AddDate(0, 1, 0) {
		year, month := cursor.Year(), cursor.Month()

		slots, err := uc.slotProvider.MonthSlots(ctx, year, month)
		if err != nil {
			uc.logger.Error("GetSchedule: failed to load month %s: %v", domain.MonthKey(year, month), err)
			return nil, fmt.Errorf("%w: failed to load month %s: %v", ErrInternal, domain.MonthKey(year, month), err)
		}

		months = append(months, buildMonthGroup(year, month, slots))
	}

	uc.logger.Info("GetSchedule: built %d month groups (%s..%s)",
		len(months), domain.MonthKey(req.FromYear, req.FromMonth), domain.MonthKey(req.ToYear, req.ToMonth))

	return &Response{Months: months}, nil
}

func validateRange(req *Request) error {
	if req.FromYear <= 0 || req.ToYear <= 0 ||
		req.FromMonth < 1 || req.FromMonth > 12 ||
		req.ToMonth < 1 || req.ToMonth > 12 {
		return fmt.Errorf("%w: %d-%d..%d-%d", ErrInvalidRange,
			req.FromYear, req.FromMonth, req.ToYear, req.ToMonth)
	}

	from := time.Date(req.FromYear, req.FromMonth, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(req.ToYear, req.ToMonth, 1, 0, 0, 0, 0, time.UTC)
	if to.Before(from) {
		return fmt.Errorf("%w: range is inverted", ErrInvalidRange)
	}
	if from.AddDate(0, maxRangeMonths, 0).Before(to) {
		return fmt.Errorf("%w: range exceeds %d months", ErrInvalidRange, maxRangeMonths)
	}

	return nil
}
