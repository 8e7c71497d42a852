package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/somriures/SC-BookingConsole/internal/api/handlers"
	"github.com/somriures/SC-BookingConsole/internal/service/slots"
)

type Handler struct {
	slots  SlotsService
	msg    Messages
	logger Logger
}

func NewHandler(slots SlotsService, msg Messages, logger Logger) *Handler {
	return &Handler{
		slots:  slots,
		msg:    msg,
		logger: logger,
	}
}

// DeleteSlotResponse HTTP response model
type DeleteSlotResponse struct {
	Message string `json:"message"`
}

// Handle DELETE /api/v1/slots/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /slots/{id} - invalid id: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, h.msg.T("common.invalid_request_body"))
		return
	}

	if err := h.slots.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, slots.ErrUpstream):
			h.logger.Error("DELETE /slots/%d - remote store failed: %v", id, err)
			handlers.RespondBadGateway(w, h.msg.T("common.upstream_unavailable"))

		default:
			h.logger.Error("DELETE /slots/%d - failed to delete slot: %v", id, err)
			handlers.RespondInternalError(w, h.msg.T("common.internal_error"))
		}
		return
	}

	h.logger.Info("DELETE /slots/%d - slot deleted", id)
	handlers.RespondJSON(w, http.StatusOK, DeleteSlotResponse{Message: h.msg.T("slot.deleted")})
}
