package update_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/somriures/SC-BookingConsole/internal/api/handlers"
	"github.com/somriures/SC-BookingConsole/internal/domain"
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

// Handle PATCH /api/v1/slots/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /slots/{id} - invalid id: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, h.msg.T("common.invalid_request_body"))
		return
	}

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots/%d - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, h.msg.T("common.invalid_request_body"))
		return
	}

	// Event times arrive as HH:MM anchored on the slot's own date. An
	// uncached id has no date to anchor on and no state to validate
	// against, so the console treats it as unknown.
	cached, ok := h.slots.GetSlot(id)
	if !ok {
		h.logger.Warn("PATCH /slots/%d - slot not in cache", id)
		handlers.RespondNotFound(w, h.msg.T("slot.not_found"))
		return
	}

	updateReq, err := req.ToUpdateRequest(cached.Date)
	if err != nil {
		h.logger.Warn("PATCH /slots/%d - failed to parse request: %v", id, err)
		handlers.RespondBadRequest(w, h.msg.T("slot.invalid_time"))
		return
	}

	updated, err := h.slots.Update(r.Context(), id, updateReq)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PATCH /slots/%d - slot not found", id)
			handlers.RespondNotFound(w, h.msg.T("slot.not_found"))

		case errors.Is(err, domain.ErrEndBeforeStart):
			h.logger.Warn("PATCH /slots/%d - end before start: %v", id, err)
			handlers.RespondBadRequest(w, h.msg.T("slot.end_before_start"))

		case errors.Is(err, domain.ErrMissingDate),
			errors.Is(err, domain.ErrMissingTimes),
			errors.Is(err, domain.ErrMissingHours),
			errors.Is(err, domain.ErrMissingCapacity),
			errors.Is(err, domain.ErrSpotsOutOfRange),
			errors.Is(err, domain.ErrInvalidSlotStatus):
			h.logger.Warn("PATCH /slots/%d - invalid fields: %v", id, err)
			handlers.RespondBadRequest(w, h.msg.T("slot.invalid_fields"))

		case errors.Is(err, slots.ErrUpstream):
			h.logger.Error("PATCH /slots/%d - remote store failed: %v", id, err)
			handlers.RespondBadGateway(w, h.msg.T("common.upstream_unavailable"))

		default:
			h.logger.Error("PATCH /slots/%d - failed to update slot: %v", id, err)
			handlers.RespondInternalError(w, h.msg.T("common.internal_error"))
		}
		return
	}

	h.logger.Info("PATCH /slots/%d - slot updated", id)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewSlotView(updated))
}
