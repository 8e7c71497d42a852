package get_schedule

import (
	"fmt"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/api/handlers"
	"github.com/somriures/SC-BookingConsole/internal/domain"
	getSchedule "github.com/somriures/SC-BookingConsole/internal/usecase/get_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Months []MonthGroupResponse `json:"months"`
}

// RollupResponse repeats at week and month level.
type RollupResponse struct {
	TotalSlots        int `json:"totalSlots"`
	OpenSlots         int `json:"openSlots"`
	TotalCapacity     int `json:"totalCapacity"`
	AvailableCapacity int `json:"availableCapacity"`
}

type MonthGroupResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	RollupResponse

	Weeks []WeekGroupResponse `json:"weeks"`
}

type WeekGroupResponse struct {
	WeekStart string `json:"weekStart"`
	RollupResponse

	Slots []handlers.SlotView `json:"slots"`
}

// parseMonth parses "YYYY-MM".
func parseMonth(raw string) (int, time.Month, error) {
	var year, month int
	if _, err := fmt.Sscanf(raw, "%d-%d", &year, &month); err != nil {
		return 0, 0, err
	}
	return year, time.Month(month), nil
}

func fromRollup(r getSchedule.Rollup) RollupResponse {
	return RollupResponse{
		TotalSlots:        r.TotalSlots,
		OpenSlots:         r.OpenSlots,
		TotalCapacity:     r.TotalCapacity,
		AvailableCapacity: r.AvailableCapacity,
	}
}

// FromUseCaseResponse converts the use case result to the HTTP model.
func FromUseCaseResponse(result *getSchedule.Response) *ScheduleResponse {
	months := make([]MonthGroupResponse, 0, len(result.Months))
	for _, m := range result.Months {
		weeks := make([]WeekGroupResponse, 0, len(m.Weeks))
		for _, wk := range m.Weeks {
			weeks = append(weeks, WeekGroupResponse{
				WeekStart:      wk.WeekStart.Format(domain.DateFormat),
				RollupResponse: fromRollup(wk.Rollup),
				Slots:          handlers.NewSlotViews(wk.Slots),
			})
		}
		months = append(months, MonthGroupResponse{
			Year:           m.Year,
			Month:          int(m.Month),
			RollupResponse: fromRollup(m.Rollup),
			Weeks:          weeks,
		})
	}
	return &ScheduleResponse{Months: months}
}
