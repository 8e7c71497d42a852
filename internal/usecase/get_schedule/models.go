package get_schedule

import (
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// Request asks for the grouped schedule over an inclusive month range.
type Request struct {
	FromYear  int
	FromMonth time.Month
	ToYear    int
	ToMonth   time.Month
}

// Response lists every month in the range, including months without
// slots, so administrators see upcoming empty months.
type Response struct {
	Months []MonthGroup
}

// Rollup carries the counters repeated at week and month level.
type Rollup struct {
	TotalSlots        int
	OpenSlots         int
	TotalCapacity     int
	AvailableCapacity int
}

// MonthGroup is one month with its non-empty weeks.
type MonthGroup struct {
	Year  int
	Month time.Month
	Rollup

	Weeks []WeekGroup
}

// WeekGroup is one ISO week (Monday start) holding at least one slot,
// with its slots in display order.
type WeekGroup struct {
	WeekStart time.Time
	Rollup

	Slots []domain.Slot
}
