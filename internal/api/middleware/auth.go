package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/somriures/SC-BookingConsole/internal/api/handlers"
	"github.com/somriures/SC-BookingConsole/internal/integrations/authservice"
)

type contextKey string

const sessionKey contextKey = "session"

// TokenVerifier validates a session token against the credential service.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*authservice.Session, error)
}

// Messages resolves user-facing message keys.
type Messages interface {
	T(key string) string
}

// Logger is the logging subset the middleware needs.
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth rejects requests without a valid bearer token and stores the
// verified session in the request context.
func Auth(verifier TokenVerifier, msg Messages, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				logger.Warn("%s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msg.T("common.unauthorized"))
				return
			}

			session, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if errors.Is(err, authservice.ErrTokenInvalid) {
					logger.Warn("%s %s - invalid token", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msg.T("common.unauthorized"))
					return
				}
				logger.Error("%s %s - token verification failed: %v", r.Method, r.URL.Path, err)
				handlers.RespondBadGateway(w, msg.T("common.upstream_unavailable"))
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session stored by the Auth middleware.
func SessionFromContext(ctx context.Context) (*authservice.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*authservice.Session)
	return session, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
