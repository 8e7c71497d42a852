package generate_slots

import (
	"fmt"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/internal/service/slots"
	"github.com/somriures/SC-BookingConsole/pkg/types"
)

// parseRequest validates the raw request and converts it to the service
// payload. Pure: no clock, no I/O.
func parseRequest(req *Request) (slots.GenerateRequest, error) {
	var out slots.GenerateRequest

	open, err := types.NewTimeStringFromString(req.OpenHour)
	if err != nil {
		return out, fmt.Errorf("%w: open_hour %q", ErrInvalidTemplate, req.OpenHour)
	}
	close, err := types.NewTimeStringFromString(req.CloseHour)
	if err != nil {
		return out, fmt.Errorf("%w: close_hour %q", ErrInvalidTemplate, req.CloseHour)
	}
	if !open.IsBefore(close) {
		return out, fmt.Errorf("%w: close %s not after open %s", ErrInvalidTemplate, close, open)
	}
	if req.Capacity < domain.MinCapacity || req.Capacity > domain.MaxCapacity {
		return out, fmt.Errorf("%w: capacity %d out of [%d, %d]", ErrInvalidTemplate,
			req.Capacity, domain.MinCapacity, domain.MaxCapacity)
	}

	status := domain.SlotStatus(req.Status)
	if req.Status == "" {
		status = domain.StatusOpen
	}
	if status != domain.StatusOpen && status != domain.StatusClosed {
		return out, fmt.Errorf("%w: status %q", ErrInvalidTemplate, req.Status)
	}

	out.OpenHour = open
	out.CloseHour = close
	out.Capacity = req.Capacity
	out.Status = status

	hasRange := req.FromDate != "" || req.ToDate != ""
	hasCustom := len(req.CustomDates) > 0
	if hasRange == hasCustom {
		return out, fmt.Errorf("%w: exactly one of date range or custom dates must be set", ErrInvalidDates)
	}

	if hasCustom {
		if len(req.CustomDates) > domain.MaxGeneratedDates {
			return out, fmt.Errorf("%w: %d custom dates, max %d", ErrTooManyDates,
				len(req.CustomDates), domain.MaxGeneratedDates)
		}
		seen := make(map[string]struct{}, len(req.CustomDates))
		for _, raw := range req.CustomDates {
			date, err := time.Parse(domain.DateFormat, raw)
			if err != nil {
				return out, fmt.Errorf("%w: custom date %q", ErrInvalidDates, raw)
			}
			if _, dup := seen[raw]; dup {
				continue
			}
			seen[raw] = struct{}{}
			out.CustomDates = append(out.CustomDates, date)
		}
		return out, nil
	}

	from, err := time.Parse(domain.DateFormat, req.FromDate)
	if err != nil {
		return out, fmt.Errorf("%w: from_date %q", ErrInvalidDates, req.FromDate)
	}
	to, err := time.Parse(domain.DateFormat, req.ToDate)
	if err != nil {
		return out, fmt.Errorf("%w: to_date %q", ErrInvalidDates, req.ToDate)
	}
	if to.Before(from) {
		return out, fmt.Errorf("%w: range is inverted", ErrInvalidDates)
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > domain.MaxGeneratedDates {
		return out, fmt.Errorf("%w: range spans %d days, max %d", ErrTooManyDates,
			days, domain.MaxGeneratedDates)
	}

	out.FromDate = from
	out.ToDate = to
	return out, nil
}
