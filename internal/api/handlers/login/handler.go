package login

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

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	UserID         string `json:"userId"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"emailConfirmed"`
	AccessToken    string `json:"accessToken"`
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - invalid request body: %v", err)
		handlers.RespondBadRequest(w, h.msg.T("common.invalid_request_body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		h.logger.Warn("POST /auth/login - missing credentials")
		handlers.RespondBadRequest(w, h.msg.T("auth.invalid_credentials"))
		return
	}

	session, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, h.msg.T("auth.invalid_credentials"))

		case errors.Is(err, authservice.ErrUnavailable):
			h.logger.Error("POST /auth/login - credential service failed: %v", err)
			handlers.RespondBadGateway(w, h.msg.T("common.upstream_unavailable"))

		default:
			h.logger.Error("POST /auth/login - sign-in failed: %v", err)
			handlers.RespondInternalError(w, h.msg.T("common.internal_error"))
		}
		return
	}

	h.logger.Info("POST /auth/login - signed in: user_id=%s", session.UserID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		UserID:         session.UserID,
		Email:          session.Email,
		EmailConfirmed: session.EmailConfirmed,
		AccessToken:    session.AccessToken,
	})
}
