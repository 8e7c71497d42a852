package slotcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

func slot(id int64, date time.Time, spots int) domain.Slot {
	return domain.Slot{
		ID:             id,
		Kind:           domain.KindRecurring,
		Date:           date,
		Status:         domain.StatusOpen,
		OpenHour:       "09:00",
		CloseHour:      "13:00",
		Capacity:       10,
		AvailableSpots: spots,
	}
}

var july = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

func TestCache_MergeMonth_Deduplicates(t *testing.T) {
	c := New()

	fetched := []domain.Slot{
		slot(1, july, 10),
		slot(2, july.AddDate(0, 0, 1), 10),
		slot(3, july.AddDate(0, 0, 2), 10),
	}

	added := c.MergeMonth(2024, time.July, fetched)
	assert.Equal(t, 3, added)
	assert.Equal(t, 3, c.Len())
	assert.True(t, c.MonthLoaded(2024, time.July))

	// Refetching the same month contributes zero new ids.
	added = c.MergeMonth(2024, time.July, fetched)
	assert.Equal(t, 0, added)
	assert.Equal(t, 3, c.Len())

	// A partially overlapping fetch adds only the new ids.
	added = c.MergeMonth(2024, time.July, []domain.Slot{
		slot(3, july.AddDate(0, 0, 2), 10),
		slot(4, july.AddDate(0, 0, 3), 10),
	})
	assert.Equal(t, 1, added)
	assert.Equal(t, 4, c.Len())
}

func TestCache_MergeMonth_KeepsExistingState(t *testing.T) {
	c := New()
	c.MergeMonth(2024, time.July, []domain.Slot{slot(1, july, 10)})

	// An optimistic local change must not be clobbered by a dedup merge
	// that re-returns the same id.
	_, ok := c.StageUpdate(1, func(s *domain.Slot) { s.AvailableSpots = 4 })
	require.True(t, ok)

	c.MergeMonth(2024, time.July, []domain.Slot{slot(1, july, 10)})

	got, _ := c.Get(1)
	assert.Equal(t, 4, got.AvailableSpots)
}

func TestCache_StageDelete_IdempotentOnAbsentID(t *testing.T) {
	c := New()
	c.ApplyCreate(slot(1, july, 10))

	revert, existed := c.StageDelete(99)
	assert.False(t, existed)
	assert.Equal(t, 1, c.Len())
	revert() // must be a safe no-op
	assert.Equal(t, 1, c.Len())
}

func TestCache_StageDelete_RollsBack(t *testing.T) {
	c := New()
	c.ApplyCreate(slot(1, july, 10))

	revert, existed := c.StageDelete(1)
	require.True(t, existed)
	assert.Equal(t, 0, c.Len())

	revert()
	assert.Equal(t, 1, c.Len())
	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 10, got.AvailableSpots)
}

func TestCache_StageUpdate_CommitAndRollback(t *testing.T) {
	c := New()
	c.ApplyCreate(slot(1, july, 10))

	// Optimistic patch is visible immediately.
	revert, ok := c.StageUpdate(1, func(s *domain.Slot) { s.Status = domain.StatusClosed })
	require.True(t, ok)
	got, _ := c.Get(1)
	assert.Equal(t, domain.StatusClosed, got.Status)

	// Failed remote call: revert restores the pre-patch state.
	revert()
	got, _ = c.Get(1)
	assert.Equal(t, domain.StatusOpen, got.Status)

	// Successful remote call: the authoritative response replaces the patch.
	_, ok = c.StageUpdate(1, func(s *domain.Slot) { s.AvailableSpots = 9 })
	require.True(t, ok)
	authoritative := slot(1, july, 8)
	c.Commit(authoritative)
	got, _ = c.Get(1)
	assert.Equal(t, 8, got.AvailableSpots)
}

func TestCache_StageUpdate_UnknownID(t *testing.T) {
	c := New()
	_, ok := c.StageUpdate(42, func(s *domain.Slot) {})
	assert.False(t, ok)
}

func TestCache_ByDate_FiltersAndSorts(t *testing.T) {
	c := New()
	other := july.AddDate(0, 0, 5)

	s1 := slot(1, july, 10)
	s1.OpenHour = "15:00"
	s2 := slot(2, july, 10)
	s2.OpenHour = "09:00"
	s3 := slot(3, other, 10)

	c.ApplyCreate(s1, s2, s3)

	got := c.ByDate(july)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}

func TestCache_DayFetched(t *testing.T) {
	c := New()

	assert.False(t, c.DayFetched(july))

	c.MarkDayFetched(july)
	assert.True(t, c.DayFetched(july))
	// The time component is irrelevant: the mark is per calendar day.
	assert.True(t, c.DayFetched(july.Add(15*time.Hour)))

	assert.False(t, c.DayFetched(july.AddDate(0, 0, 1)))
}

func TestCache_InvalidateMonth(t *testing.T) {
	c := New()
	c.MergeMonth(2024, time.July, []domain.Slot{slot(1, july, 10)})
	require.True(t, c.MonthLoaded(2024, time.July))

	c.InvalidateMonth(2024, time.July)
	assert.False(t, c.MonthLoaded(2024, time.July))
	// Slots stay until the refetch merges over them.
	assert.Equal(t, 1, c.Len())
}

func TestCache_MergeMonth_ReconcilesInvalidatedMonth(t *testing.T) {
	c := New()
	c.MergeMonth(2024, time.July, []domain.Slot{
		slot(1, july, 10),
		slot(2, july.AddDate(0, 0, 1), 10),
	})

	c.InvalidateMonth(2024, time.July)

	// The refetch replaces cached state: stale spots are overwritten and
	// ids the store no longer returns are dropped.
	c.MergeMonth(2024, time.July, []domain.Slot{slot(1, july, 2)})

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 2, got.AvailableSpots)

	_, ok = c.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.MonthLoaded(2024, time.July))

	// Once reconciled, the month is back to keep-existing merges.
	c.MergeMonth(2024, time.July, []domain.Slot{slot(1, july, 9)})
	got, _ = c.Get(1)
	assert.Equal(t, 2, got.AvailableSpots)
}

func TestCache_Remove_SelfHeal(t *testing.T) {
	c := New()
	c.ApplyCreate(slot(1, july, 10))

	c.Remove(1)
	assert.Equal(t, 0, c.Len())

	// Removing an absent id stays a no-op.
	c.Remove(1)
	assert.Equal(t, 0, c.Len())
}
