package delete_booking

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

// DeleteBookingResponse HTTP response model
type DeleteBookingResponse struct {
	Message string `json:"message"`
}

// Handle DELETE /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - invalid id: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, h.msg.T("common.invalid_request_body"))
		return
	}

	if err := h.bookings.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, bookings.ErrUpstream):
			h.logger.Error("DELETE /bookings/%d - remote store failed: %v", id, err)
			handlers.RespondBadGateway(w, h.msg.T("common.upstream_unavailable"))

		default:
			h.logger.Error("DELETE /bookings/%d - failed to delete booking: %v", id, err)
			handlers.RespondInternalError(w, h.msg.T("common.internal_error"))
		}
		return
	}

	h.logger.Info("DELETE /bookings/%d - booking deleted", id)
	handlers.RespondJSON(w, http.StatusOK, DeleteBookingResponse{Message: h.msg.T("booking.deleted")})
}
