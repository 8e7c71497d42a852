package get_calendar

import (
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// Request asks for the calendar statistics of one month.
type Request struct {
	Year  int
	Month time.Month
}

// Response carries the per-day statistics and the two day sets used for
// calendar coloring. Days without slots are absent from Days and from
// both sets: absent and empty render the same (no indicator).
type Response struct {
	Year  int
	Month time.Month

	Days map[int]DayStat

	// AvailableDays: days with status available or partial.
	// BookedDays: days with status full or partial.
	// A partial day belongs to both, so the UI can show a mixed indicator.
	AvailableDays []int
	BookedDays    []int
}

// DayStat is the aggregate of one calendar day.
type DayStat struct {
	Total             int
	Open              int
	TotalCapacity     int
	AvailableCapacity int
	Status            domain.DayStatus
}
