package get_calendar

import (
	"sort"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
)

// buildDayStats computes the per-day aggregates of one month from a slot
// collection. Slots outside the target month are filtered out, so callers
// may pass a larger collection. Pure and deterministic.
func buildDayStats(slots []domain.Slot, year int, month time.Month) map[int]DayStat {
	byDay := make(map[int][]domain.Slot)
	for _, s := range slots {
		if s.Date.Year() != year || s.Date.Month() != month {
			continue
		}
		day := s.Date.Day()
		byDay[day] = append(byDay[day], s)
	}

	stats := make(map[int]DayStat, len(byDay))
	for day, daySlots := range byDay {
		stat := DayStat{
			Total:  len(daySlots),
			Status: domain.ClassifyDay(daySlots),
		}
		for i := range daySlots {
			s := &daySlots[i]
			if s.IsOpen() {
				stat.Open++
			}
			stat.TotalCapacity += s.TotalCapacity()
			stat.AvailableCapacity += s.FreeCapacity()
		}
		stats[day] = stat
	}

	return stats
}

// daySets derives the two coloring sets from the day stats. A partial
// day appears in both.
func daySets(stats map[int]DayStat) (available, booked []int) {
	for day, stat := range stats {
		switch stat.Status {
		case domain.DayAvailable:
			available = append(available, day)
		case domain.DayFull:
			booked = append(booked, day)
		case domain.DayPartial:
			available = append(available, day)
			booked = append(booked, day)
		}
	}

	sort.Ints(available)
	sort.Ints(booked)
	return available, booked
}
