package get_calendar

import (
	getCalendar "github.com/somriures/SC-BookingConsole/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	Days map[int]DayStatResponse `json:"days"`

	AvailableDays []int `json:"availableDays"`
	BookedDays    []int `json:"bookedDays"`
}

// DayStatResponse aggregates one calendar day.
type DayStatResponse struct {
	Total             int    `json:"total"`
	Open              int    `json:"open"`
	TotalCapacity     int    `json:"totalCapacity"`
	AvailableCapacity int    `json:"availableCapacity"`
	Status            string `json:"status"`
}

// FromUseCaseResponse converts the use case result to the HTTP model.
func FromUseCaseResponse(result *getCalendar.Response) *CalendarResponse {
	days := make(map[int]DayStatResponse, len(result.Days))
	for day, stat := range result.Days {
		days[day] = DayStatResponse{
			Total:             stat.Total,
			Open:              stat.Open,
			TotalCapacity:     stat.TotalCapacity,
			AvailableCapacity: stat.AvailableCapacity,
			Status:            string(stat.Status),
		}
	}
	return &CalendarResponse{
		Year:          result.Year,
		Month:         int(result.Month),
		Days:          days,
		AvailableDays: result.AvailableDays,
		BookedDays:    result.BookedDays,
	}
}
