package generate_slots

import (
	"errors"
	"net/http"

	"github.com/somriures/SC-BookingConsole/internal/api/handlers"
	generateSlots "github.com/somriures/SC-BookingConsole/internal/usecase/generate_slots"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	msg     Messages
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, msg Messages, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		msg:     msg,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/generate - invalid request body: %v", err)
		handlers.RespondBadRequest(w, h.msg.T("common.invalid_request_body"))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrInvalidTemplate):
			h.logger.Warn("POST /slots/generate - invalid template: %v", err)
			handlers.RespondBadRequest(w, h.msg.T("slot.invalid_fields"))

		case errors.Is(err, generateSlots.ErrInvalidDates):
			h.logger.Warn("POST /slots/generate - invalid dates: %v", err)
			handlers.RespondBadRequest(w, h.msg.T("slot.invalid_date"))

		case errors.Is(err, generateSlots.ErrTooManyDates):
			h.logger.Warn("POST /slots/generate - too many dates: %v", err)
			handlers.RespondBadRequest(w, h.msg.T("slot.too_many_dates"))

		default:
			h.logger.Error("POST /slots/generate - generation failed: %v", err)
			handlers.RespondBadGateway(w, h.msg.T("common.upstream_unavailable"))
		}
		return
	}

	h.logger.Info("POST /slots/generate - created %d slots", len(result.Created))
	handlers.RespondJSON(w, http.StatusCreated, GenerateSlotsResponse{
		Message: h.msg.T("slot.generated"),
		Created: handlers.NewSlotViews(result.Created),
	})
}
