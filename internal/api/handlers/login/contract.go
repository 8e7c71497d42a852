package login

import (
	"context"

	"github.com/somriures/SC-BookingConsole/internal/integrations/authservice"
)

// AuthService signs users in against the credential service.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*authservice.Session, error)
}

type Messages interface {
	T(key string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
