package list_bookings

import (
	"net/http"
	"time"

	"github.com/somriures/SC-BookingConsole/internal/api/handlers"
	"github.com/somriures/SC-BookingConsole/internal/domain"
)

type Handler struct {
	bookings BookingsService
	msg      Messages
	logger   Logger
}

func NewHandler(bookings BookingsService, msg Messages, logger Logger) *Handler {
	return &Handler{
		bookings: bookings,
		msg:      msg,
		logger:   logger,
	}
}

// ListBookingsResponse HTTP response model
type ListBookingsResponse struct {
	Date     string                 `json:"date"`
	Bookings []handlers.BookingView `json:"bookings"`
}

// Handle GET /api/v1/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("GET /bookings - invalid date: %q", raw)
		handlers.RespondBadRequest(w, h.msg.T("slot.invalid_date"))
		return
	}

	listed, err := h.bookings.ListByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /bookings - failed to list bookings for %s: %v", raw, err)
		handlers.RespondBadGateway(w, h.msg.T("common.upstream_unavailable"))
		return
	}

	views := make([]handlers.BookingView, 0, len(listed))
	for _, b := range listed {
		views = append(views, handlers.NewBookingView(b))
	}

	handlers.RespondJSON(w, http.StatusOK, ListBookingsResponse{
		Date:     raw,
		Bookings: views,
	})
}
