package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken covers every reason a token is rejected: bad format,
	// wrong algorithm or signature, expiry, or an unusable subject.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrUnsupportedAlgorithm is returned by NewTokenService for algorithms
	// other than HS256, HS384 and HS512.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
)
