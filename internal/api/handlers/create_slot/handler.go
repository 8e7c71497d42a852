package create_slot

import (
	"errors"
	"net/http"

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

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - invalid request body: %v", err)
		handlers.RespondBadRequest(w, h.msg.T("common.invalid_request_body"))
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		h.logger.Warn("POST /slots - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, h.msg.T("slot.invalid_time"))
		return
	}

	created, err := h.slots.Create(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEndBeforeStart):
			h.logger.Warn("POST /slots - end before start: %v", err)
			handlers.RespondBadRequest(w, h.msg.T("slot.end_before_start"))

		case errors.Is(err, domain.ErrMissingDate),
			errors.Is(err, domain.ErrMissingTimes),
			errors.Is(err, domain.ErrMissingHours),
			errors.Is(err, domain.ErrMissingCapacity),
			errors.Is(err, domain.ErrSpotsOutOfRange),
			errors.Is(err, domain.ErrInvalidSlotKind),
			errors.Is(err, domain.ErrInvalidSlotStatus):
			h.logger.Warn("POST /slots - invalid fields: %v", err)
			handlers.RespondBadRequest(w, h.msg.T("slot.invalid_fields"))

		case errors.Is(err, slots.ErrUpstream):
			h.logger.Error("POST /slots - remote store failed: %v", err)
			handlers.RespondBadGateway(w, h.msg.T("common.upstream_unavailable"))

		default:
			h.logger.Error("POST /slots - failed to create slot: %v", err)
			handlers.RespondInternalError(w, h.msg.T("common.internal_error"))
		}
		return
	}

	h.logger.Info("POST /slots - slot created: id=%d kind=%s date=%s", created.ID, created.Kind, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, handlers.NewSlotView(created))
}
