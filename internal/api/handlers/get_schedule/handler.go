package get_schedule

import (
	"errors"
	"net/http"

	"github.com/somriures/SC-BookingConsole/internal/api/handlers"
	getSchedule "github.com/somriures/SC-BookingConsole/internal/usecase/get_schedule"
)

type Handler struct {
	useCase GetScheduleUseCase
	msg     Messages
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, msg Messages, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		msg:     msg,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule?from=YYYY-MM&to=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromRaw := r.URL.Query().Get("from")
	toRaw := r.URL.Query().Get("to")

	fromYear, fromMonth, errFrom := parseMonth(fromRaw)
	toYear, toMonth, errTo := parseMonth(toRaw)
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /schedule - invalid query params: from=%q to=%q", fromRaw, toRaw)
		handlers.RespondBadRequest(w, h.msg.T("calendar.invalid_month"))
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSchedule.Request{
		FromYear:  fromYear,
		FromMonth: fromMonth,
		ToYear:    toYear,
		ToMonth:   toMonth,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrInvalidRange):
			h.logger.Warn("GET /schedule - invalid range: %s..%s", fromRaw, toRaw)
			handlers.RespondBadRequest(w, h.msg.T("calendar.invalid_month"))

		default:
			h.logger.Error("GET /schedule - failed to build schedule %s..%s: %v", fromRaw, toRaw, err)
			handlers.RespondInternalError(w, h.msg.T("common.internal_error"))
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
