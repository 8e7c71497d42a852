package get_day_slots

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/somriures/SC-BookingConsole/internal/api/handlers"
	"github.com/somriures/SC-BookingConsole/internal/domain"
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

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date  string              `json:"date"`
	Slots []handlers.SlotView `json:"slots"`
}

// Handle GET /api/v1/days/{date}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("GET /days/{date}/slots - invalid date: %q", raw)
		handlers.RespondBadRequest(w, h.msg.T("slot.invalid_date"))
		return
	}

	slots, err := h.slots.DaySlots(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /days/%s/slots - failed to load day: %v", raw, err)
		handlers.RespondBadGateway(w, h.msg.T("common.upstream_unavailable"))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DaySlotsResponse{
		Date:  raw,
		Slots: handlers.NewSlotViews(slots),
	})
}
