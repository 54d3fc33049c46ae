package auth

import "errors"

// Sentinel errors for the auth flows. Handlers map these to HTTP status
// codes with errors.Is; everything wrapped in ErrStorage stays behind a
// generic message and never leaks driver text to callers.
var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrWeakPassword = errors.New("weak password")
	ErrEmailTaken   = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong
	// password so the two cases are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenExpired  = errors.New("token has expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrTokenNotFound = errors.New("invalid or expired token")

	ErrStorage = errors.New("storage error")
)
