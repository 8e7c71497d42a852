package generate_slots

import "github.com/somriures/SC-BookingConsole/internal/domain"

// Request carries the raw template and dates as received from the
// transport layer. Exactly one of the date range or CustomDates is set.
type Request struct {
	OpenHour  string
	CloseHour string
	Capacity  int
	Status    string // empty defaults to open

	FromDate    string
	ToDate      string
	CustomDates []string
}

// Response returns the created slots, ids assigned by the store.
type Response struct {
	Created []domain.Slot
}
