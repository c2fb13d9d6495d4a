package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Field-specific errors below wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is zero or negative.
	ErrInvalidID = errors.New("invalid ID")
)

// Field validation errors. Each wraps ErrValidation.
var (
	ErrInvalidName       = wrapValidation("name must be at least 4 characters")
	ErrEmptyEmail        = wrapValidation("email cannot be empty")
	ErrInvalidEmail      = wrapValidation("email must contain '@'")
	ErrEmptyPhone        = wrapValidation("phone cannot be empty")
	ErrInvalidPhone      = wrapValidation("phone must have exactly 11 digits")
	ErrEmptyPassword     = wrapValidation("password cannot be empty")
	ErrPasswordTooShort  = wrapValidation("password must be at least 6 characters")
	ErrPasswordNoUpper   = wrapValidation("password must contain an uppercase letter")
	ErrPasswordNoDigit   = wrapValidation("password must contain a digit")
	ErrPasswordTooLong   = wrapValidation("password must be at most 72 bytes")
	ErrEmptyPasswordHash = wrapValidation("password hash cannot be empty")
	ErrInvalidOwner      = wrapValidation("contact owner must be a valid user ID")
)

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return ErrValidation }

func wrapValidation(msg string) error {
	return &validationError{msg: msg}
}
