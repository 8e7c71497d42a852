package register

import (
	"context"

	"github.com/somriures/SC-BookingConsole/internal/integrations/authservice"
)

// AuthService registers accounts against the credential service.
type AuthService interface {
	SignUp(ctx context.Context, email, password string, profile authservice.Profile) (*authservice.Session, error)
}

type Messages interface {
	T(key string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
