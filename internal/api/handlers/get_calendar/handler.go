package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/somriures/SC-BookingConsole/internal/api/handlers"
	getCalendar "github.com/somriures/SC-BookingConsole/internal/usecase/get_calendar"
)

type Handler struct {
	useCase GetCalendarUseCase
	msg     Messages
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, msg Messages, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		msg:     msg,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, errYear := strconv.Atoi(vars["year"])
	month, errMonth := strconv.Atoi(vars["month"])
	if errYear != nil || errMonth != nil {
		h.logger.Warn("GET /calendar - invalid path params: year=%q month=%q", vars["year"], vars["month"])
		handlers.RespondBadRequest(w, h.msg.T("calendar.invalid_month"))
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		Year:  year,
		Month: time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidMonth):
			h.logger.Warn("GET /calendar - invalid month: %d-%d", year, month)
			handlers.RespondBadRequest(w, h.msg.T("calendar.invalid_month"))

		default:
			h.logger.Error("GET /calendar - failed to build calendar %d-%d: %v", year, month, err)
			handlers.RespondInternalError(w, h.msg.T("common.internal_error"))
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
