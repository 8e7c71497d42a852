package register

import (
	"errors"
	"net/http"

	"github.com/somriures/SC-BookingConsole/internal/api/handlers"
	"github.com/somriures/SC-BookingConsole/internal/integrations/authservice"
)

type Handler struct {
	auth   AuthService
	msg    Messages
	logger Logger
}

func NewHandler(auth AuthService, msg Messages, logger Logger) *Handler {
	return &Handler{
		auth:   auth,
		msg:    msg,
		logger: logger,
	}
}

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// RegisterResponse HTTP response model
type RegisterResponse struct {
	UserID         string `json:"userId"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"emailConfirmed"`
	AccessToken    string `json:"accessToken"`
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - invalid request body: %v", err)
		handlers.RespondBadRequest(w, h.msg.T("common.invalid_request_body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		h.logger.Warn("POST /auth/register - missing credentials")
		handlers.RespondBadRequest(w, h.msg.T("auth.invalid_credentials"))
		return
	}

	session, err := h.auth.SignUp(r.Context(), req.Email, req.Password, authservice.Profile{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - email taken: email=%s", req.Email)
			handlers.RespondConflict(w, h.msg.T("auth.email_taken"))

		case errors.Is(err, authservice.ErrUnavailable):
			h.logger.Error("POST /auth/register - credential service failed: %v", err)
			handlers.RespondBadGateway(w, h.msg.T("common.upstream_unavailable"))

		default:
			h.logger.Error("POST /auth/register - registration failed: %v", err)
			handlers.RespondInternalError(w, h.msg.T("common.internal_error"))
		}
		return
	}

	h.logger.Info("POST /auth/register - account created: user_id=%s", session.UserID)
	handlers.RespondJSON(w, http.StatusCreated, RegisterResponse{
		UserID:         session.UserID,
		Email:          session.Email,
		EmailConfirmed: session.EmailConfirmed,
		AccessToken:    session.AccessToken,
	})
}
