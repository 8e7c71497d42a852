package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default values
const (
	// DefaultWindowMonths bounds the initial fetch-all window
	// (this many months back and forward from today).
	DefaultWindowMonths = 12

	DefaultCapacity = 20
)

// Business validation constants
const (
	MinCapacity       = 0
	MaxCapacity       = 200
	MinNumberOfKids   = 1
	MaxNumberOfKids   = 60
	MaxCommentsLength = 500
	MaxGeneratedDates = 366 // bulk generation bounded to a year's worth of dates
)
