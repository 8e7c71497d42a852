package delete_slots

import (
	"errors"
	"net/http"

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

// DeleteSlotsRequest HTTP request model
type DeleteSlotsRequest struct {
	IDs []int64 `json:"ids"`
}

// DeleteSlotsResponse HTTP response model. Failed ids are reported so
// the console can keep them selected for a retry.
type DeleteSlotsResponse struct {
	Message string  `json:"message"`
	Deleted []int64 `json:"deleted"`
	Failed  []int64 `json:"failed,omitempty"`
}

// Handle POST /api/v1/slots/delete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/delete - invalid request body: %v", err)
		handlers.RespondBadRequest(w, h.msg.T("common.invalid_request_body"))
		return
	}
	if len(req.IDs) == 0 {
		h.logger.Warn("POST /slots/delete - empty id list")
		handlers.RespondBadRequest(w, h.msg.T("common.invalid_request_body"))
		return
	}

	result, err := h.slots.DeleteMany(r.Context(), req.IDs)
	if err != nil && !errors.Is(err, slots.ErrPartialDelete) {
		h.logger.Error("POST /slots/delete - bulk delete failed: %v", err)
		handlers.RespondInternalError(w, h.msg.T("common.internal_error"))
		return
	}

	failed := make([]int64, 0, len(result.Failed))
	for _, f := range result.Failed {
		failed = append(failed, f.ID)
	}

	if len(failed) > 0 {
		h.logger.Warn("POST /slots/delete - partial: deleted=%d failed=%d", len(result.Deleted), len(failed))
		handlers.RespondJSON(w, http.StatusMultiStatus, DeleteSlotsResponse{
			Message: h.msg.T("slot.bulk_delete_partial"),
			Deleted: result.Deleted,
			Failed:  failed,
		})
		return
	}

	h.logger.Info("POST /slots/delete - deleted %d slots", len(result.Deleted))
	handlers.RespondJSON(w, http.StatusOK, DeleteSlotsResponse{
		Message: h.msg.T("slot.deleted"),
		Deleted: result.Deleted,
	})
}
