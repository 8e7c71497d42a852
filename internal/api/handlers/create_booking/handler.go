package create_booking

import (
	"errors"
	"net/http"

	"github.com/somriures/SC-BookingConsole/internal/api/handlers"
	createBooking "github.com/somriures/SC-BookingConsole/internal/usecase/create_booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	msg     Messages
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, msg Messages, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		msg:     msg,
		logger:  logger,
	}
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Message string               `json:"message"`
	Booking handlers.BookingView `json:"booking"`
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, h.msg.T("common.invalid_request_body"))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, h.msg.T("slot.not_found"))

		case errors.Is(err, createBooking.ErrSlotClosed):
			h.logger.Warn("POST /bookings - slot closed: slot_id=%d", req.SlotID)
			handlers.RespondConflict(w, h.msg.T("booking.slot_closed"))

		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /bookings - slot full: slot_id=%d", req.SlotID)
			handlers.RespondConflict(w, h.msg.T("booking.slot_full"))

		case errors.Is(err, createBooking.ErrMissingContact):
			h.logger.Warn("POST /bookings - missing contact: slot_id=%d", req.SlotID)
			handlers.RespondBadRequest(w, h.msg.T("booking.missing_contact"))

		case errors.Is(err, createBooking.ErrInvalidKids):
			h.logger.Warn("POST /bookings - invalid kids count: slot_id=%d, error=%v", req.SlotID, err)
			handlers.RespondBadRequest(w, h.msg.T("booking.invalid_kids"))

		case errors.Is(err, createBooking.ErrCommentsTooLong):
			h.logger.Warn("POST /bookings - comments too long: slot_id=%d", req.SlotID)
			handlers.RespondBadRequest(w, h.msg.T("booking.comments_too_long"))

		default:
			h.logger.Error("POST /bookings - failed to create booking: slot_id=%d, error=%v", req.SlotID, err)
			handlers.RespondBadGateway(w, h.msg.T("common.upstream_unavailable"))
		}
		return
	}

	h.logger.Info("POST /bookings - booking created: booking_id=%d slot_id=%d", result.Booking.ID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, CreateBookingResponse{
		Message: h.msg.T("booking.created"),
		Booking: handlers.NewBookingView(result.Booking),
	})
}
