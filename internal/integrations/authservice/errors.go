package authservice

import "errors"

var (
	// ErrInvalidCredentials is returned on a failed sign-in.
	ErrInvalidCredentials = errors.New("authservice client: invalid credentials")

	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = errors.New("authservice client: email already registered")

	// ErrTokenInvalid is returned when a session token is unknown or expired.
	ErrTokenInvalid = errors.New("authservice client: invalid or expired token")

	// ErrUnavailable is returned on transport failures and unexpected responses.
	ErrUnavailable = errors.New("authservice client: credential service unavailable")

	// ErrInternal is returned on request construction failures.
	ErrInternal = errors.New("authservice client: internal error")
)
