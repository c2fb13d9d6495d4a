package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/middleware"
	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Missing
// contacts are reported as 400 rather than 404 so that another owner's
// contact is indistinguishable from a bad request.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusForbidden

	// Client errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrEmptyPatch),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrMissingCredentials):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err. Unknown
// errors get a generic message; their details only ever reach the logs.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return msgInternalError

	// Field validation
	case errors.Is(err, domain.ErrInvalidName):
		return msgInvalidName
	case errors.Is(err, domain.ErrEmptyPassword):
		return msgPasswordRequired
	case errors.Is(err, domain.ErrPasswordTooShort):
		return msgPasswordTooShort
	case errors.Is(err, domain.ErrPasswordNoUpper):
		return msgPasswordNoUpper
	case errors.Is(err, domain.ErrPasswordNoDigit):
		return msgPasswordNoDigit
	case errors.Is(err, domain.ErrPasswordTooLong):
		return msgPasswordTooLong
	case errors.Is(err, domain.ErrEmptyEmail):
		return msgEmailRequired
	case errors.Is(err, domain.ErrInvalidEmail):
		return msgEmailNoAt
	case errors.Is(err, domain.ErrEmptyPhone):
		return msgPhoneRequired
	case errors.Is(err, domain.ErrInvalidPhone):
		return msgPhoneInvalid
	case errors.Is(err, domain.ErrInvalidID):
		return msgInvalidID
	case errors.Is(err, store.ErrEmptyPatch):
		return msgEmptyPatch

	// Duplicates
	case errors.Is(err, store.ErrPhoneExists):
		return msgPhoneExists
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrContactEmailExists):
		return msgEmailExists

	// Lookups
	case errors.Is(err, store.ErrContactNotFound):
		return msgContactNotFound
	case errors.Is(err, store.ErrUserNotFound):
		return msgUserNotFound

	// Authentication
	case errors.Is(err, service.ErrInvalidCredentials):
		return msgInvalidCredentials
	case errors.Is(err, service.ErrMissingCredentials):
		return msgMissingCredentials
	case errors.Is(err, auth.ErrMissingToken):
		return middleware.MsgMissingToken
	case errors.Is(err, auth.ErrInvalidToken):
		return middleware.MsgInvalidToken

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidRequest

	default:
		return msgInternalError
	}
}

// HandleAPIError maps err to a status code and message and writes the error
// envelope. For server errors defaultMsg, when set, replaces the generic
// message so the client learns which operation failed.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	statusCode := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if statusCode == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}

	var opts []shared.ResponseOption
	if statusCode == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, statusCode, message, err, opts...)
}
