package get_schedule

import (
	"sort"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// weekStart returns the Monday of the ISO week containing the date.
func weekStart(date time.Time) time.Time {
	day := domain.DayOf(date)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return day.AddDate(0, 0, -offset)
}

// rollup sums the counters over a slot collection.
func rollup(slots []domain.Slot) Rollup {
	var r Rollup
	r.TotalSlots = len(slots)
	for i := range slots {
		s := &slots[i]
		if s.IsOpen() {
			r.OpenSlots++
		}
		r.TotalCapacity += s.TotalCapacity()
		r.AvailableCapacity += s.FreeCapacity()
	}
	return r
}

// groupWeeks buckets one month's slots into ISO weeks. Only weeks holding
// at least one slot are surfaced; weeks and their slots come out in
// display order. Pure and deterministic.
func groupWeeks(slots []domain.Slot) []WeekGroup {
	byWeek := make(map[time.Time][]domain.Slot)
	for _, s := range slots {
		ws := weekStart(s.Date)
		byWeek[ws] = append(byWeek[ws], s)
	}

	weeks := make([]WeekGroup, 0, len(byWeek))
	for ws, weekSlots := range byWeek {
		domain.SortSlots(weekSlots)
		weeks = append(weeks, WeekGroup{
			WeekStart: ws,
			Rollup:    rollup(weekSlots),
			Slots:     weekSlots,
		})
	}

	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekStart.Before(weeks[j].WeekStart)
	})
	return weeks
}

// buildMonthGroup assembles one month's aggregate from its slots.
// A month without slots carries zero counters and no weeks.
func buildMonthGroup(year int, month time.Month, slots []domain.Slot) MonthGroup {
	return MonthGroup{
		Year:   year,
		Month:  month,
		Rollup: rollup(slots),
		Weeks:  groupWeeks(slots),
	}
}
