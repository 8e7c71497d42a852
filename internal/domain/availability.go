package domain

import "sort"

// DayStatus classifies the aggregate availability of one calendar day
// for calendar coloring.
type DayStatus string

const (
	// DayAvailable: every slot that day is open with untouched capacity.
	DayAvailable DayStatus = "available"
	// DayPartial: mixed occupancy or mixed open/closed status.
	DayPartial DayStatus = "partial"
	// DayFull: zero free capacity across all slots of the day.
	DayFull DayStatus = "full"
)

// ClassifyDay derives the day status from the slots of a single day.
// The caller guarantees the slice is non-empty; days without slots have
// no aggregate entry at all.
func ClassifyDay(slots []Slot) DayStatus {
	allFull := true
	allFresh := true

	for i := range slots {
		s := &slots[i]
		if s.FreeCapacity() > 0 {
			allFull = false
		}
		if !s.IsFullyAvailable() {
			allFresh = false
		}
	}

	switch {
	case allFull:
		return DayFull
	case allFresh:
		return DayAvailable
	default:
		return DayPartial
	}
}

// SortSlots orders slots by date ascending, then by start/open time
// ascending, then by id for a stable tie-break. This is the display
// order used by every list view.
func SortSlots(slots []Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		di, dj := DayOf(slots[i].Date), DayOf(slots[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		mi, mj := slots[i].StartMinutes(), slots[j].StartMinutes()
		if mi != mj {
			return mi < mj
		}
		return slots[i].ID < slots[j].ID
	})
}
