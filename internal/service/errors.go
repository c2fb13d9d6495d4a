package service

import "errors"

// Common service errors. Callers check them with errors.Is; the API layer
// maps them to status codes.
var (
	// ErrInvalidCredentials is returned by Authenticate for an unknown email
	// and for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingCredentials is returned when email or password is empty.
	ErrMissingCredentials = errors.New("email and password are required")
)
