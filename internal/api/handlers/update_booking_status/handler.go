package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/somriures/SC-BookingConsole/internal/api/handlers"
	"github.com/somriures/SC-BookingConsole/internal/service/bookings"
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

// UpdateBookingStatusRequest HTTP request model
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// UpdateBookingStatusResponse HTTP response model
type UpdateBookingStatusResponse struct {
	Message string               `json:"message"`
	Booking handlers.BookingView `json:"booking"`
}

// Handle PATCH /api/v1/bookings/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - invalid id: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, h.msg.T("common.invalid_request_body"))
		return
	}

	var req UpdateBookingStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d/status - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, h.msg.T("common.invalid_request_body"))
		return
	}

	updated, err := h.bookings.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/status - booking not found", id)
			handlers.RespondNotFound(w, h.msg.T("booking.not_found"))

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/%d/status - invalid status: %q", id, req.Status)
			handlers.RespondBadRequest(w, h.msg.T("booking.invalid_status"))

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/%d/status - invalid transition to %q", id, req.Status)
			handlers.RespondConflict(w, h.msg.T("booking.invalid_transition"))

		case errors.Is(err, bookings.ErrUpstream):
			h.logger.Error("PATCH /bookings/%d/status - remote store failed: %v", id, err)
			handlers.RespondBadGateway(w, h.msg.T("common.upstream_unavailable"))

		default:
			h.logger.Error("PATCH /bookings/%d/status - failed to update status: %v", id, err)
			handlers.RespondInternalError(w, h.msg.T("common.internal_error"))
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/status - status updated to %s", id, updated.Status)
	handlers.RespondJSON(w, http.StatusOK, UpdateBookingStatusResponse{
		Message: h.msg.T("booking.status_updated"),
		Booking: handlers.NewBookingView(updated),
	})
}
