package get_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/pkg/ptr"
	"github.com/somriures/SC-BookingConsole/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func recurringOn(id int64, date time.Time, open types.TimeString) domain.Slot {
	return domain.Slot{
		ID:             id,
		Kind:           domain.KindRecurring,
		Date:           date,
		Status:         domain.StatusOpen,
		OpenHour:       open,
		CloseHour:      "20:00",
		Capacity:       10,
		AvailableSpots: 10,
	}
}

func TestWeekStart_MondayBased(t *testing.T) {
	// 2024-06-03 is a Monday.
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, monday, weekStart(monday))
	assert.Equal(t, monday, weekStart(monday.AddDate(0, 0, 3))) // Thursday
	assert.Equal(t, monday, weekStart(monday.AddDate(0, 0, 6))) // Sunday
	assert.Equal(t, monday.AddDate(0, 0, 7), weekStart(monday.AddDate(0, 0, 7)))
}

func TestGroupWeeks_SortOrder(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC) }

	// Two slots on 2024-06-03 at 10:00 and 09:00, one on 2024-06-01.
	slots := []domain.Slot{
		recurringOn(1, d(3), "10:00"),
		recurringOn(2, d(3), "09:00"),
		recurringOn(3, d(1), "12:00"),
	}

	weeks := groupWeeks(slots)
	// 2024-06-01 is a Saturday (week of May 27), 2024-06-03 a Monday.
	require.Len(t, weeks, 2)

	assert.Equal(t, time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC), weeks[0].WeekStart)
	require.Len(t, weeks[0].Slots, 1)
	assert.Equal(t, int64(3), weeks[0].Slots[0].ID)

	require.Len(t, weeks[1].Slots, 2)
	assert.Equal(t, int64(2), weeks[1].Slots[0].ID) // 09:00 before 10:00
	assert.Equal(t, int64(1), weeks[1].Slots[1].ID)
}

func TestGroupWeeks_OnlyNonEmptyWeeksSurfaced(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC) }

	// Slots only in the first and last week of June.
	weeks := groupWeeks([]domain.Slot{
		recurringOn(1, d(3), "09:00"),
		recurringOn(2, d(28), "09:00"),
	})

	require.Len(t, weeks, 2)
	assert.True(t, weeks[0].WeekStart.Before(weeks[1].WeekStart))
}

func TestRollup(t *testing.T) {
	d := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	open := recurringOn(1, d, "09:00")
	open.AvailableSpots = 4

	closed := recurringOn(2, d, "15:00")
	closed.Status = domain.StatusClosed

	start := time.Date(2024, 6, 3, 17, 0, 0, 0, time.UTC)
	booked := domain.Slot{
		ID:        3,
		Kind:      domain.KindEvent,
		Date:      d,
		Status:    domain.StatusOpen,
		StartTime: ptr.Ptr(start),
		EndTime:   ptr.Ptr(start.Add(2 * time.Hour)),
		Booked:    true,
	}

	r := rollup([]domain.Slot{open, closed, booked})
	assert.Equal(t, 3, r.TotalSlots)
	assert.Equal(t, 2, r.OpenSlots)
	assert.Equal(t, 10+10+1, r.TotalCapacity)
	assert.Equal(t, 4+10+0, r.AvailableCapacity)
}

type fakeProvider struct {
	byMonth map[string][]domain.Slot
}

func (f *fakeProvider) MonthSlots(_ context.Context, year int, month time.Month) ([]domain.Slot, error) {
	return f.byMonth[domain.MonthKey(year, month)], nil
}

func TestUseCase_Execute_EmptyMonthsStillListed(t *testing.T) {
	june := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	provider := &fakeProvider{byMonth: map[string][]domain.Slot{
		"2024-06": {recurringOn(1, june, "09:00")},
	}}
	uc := NewUseCase(provider, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		FromYear: 2024, FromMonth: time.June,
		ToYear: 2024, ToMonth: time.August,
	})
	require.NoError(t, err)
	require.Len(t, resp.Months, 3)

	assert.Equal(t, 1, resp.Months[0].TotalSlots)
	require.Len(t, resp.Months[0].Weeks, 1)

	// July and August have no slots but still appear with zero counters.
	assert.Equal(t, time.July, resp.Months[1].Month)
	assert.Equal(t, 0, resp.Months[1].TotalSlots)
	assert.Empty(t, resp.Months[1].Weeks)
	assert.Equal(t, time.August, resp.Months[2].Month)
}

func TestUseCase_Execute_InvalidRange(t *testing.T) {
	uc := NewUseCase(&fakeProvider{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		FromYear: 2024, FromMonth: time.August,
		ToYear: 2024, ToMonth: time.June,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = uc.Execute(context.Background(), &Request{
		FromYear: 2024, FromMonth: 0,
		ToYear: 2024, ToMonth: time.June,
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}
