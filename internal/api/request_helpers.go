package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/service/auth"
)

// getPathID parses a positive integer id from the URL path parameter
// paramName. Anything else yields domain.ErrInvalidID.
func getPathID(r *http.Request, paramName string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, paramName), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// requireUserID returns the authenticated user's id, writing a 403 envelope
// when the auth middleware did not run.
func requireUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, auth.ErrMissingToken, "")
		return 0, false
	}
	return userID, true
}

// handleUserIDAndPathID extracts both the user id from context and the id
// path parameter. It writes an error response if either extraction fails.
func handleUserIDAndPathID(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return 0, 0, false
	}

	id, err := getPathID(r, "id")
	if err != nil {
		logger.FromContext(r.Context()).Debug("invalid path id",
			slog.String("value", chi.URLParam(r, "id")))
		HandleAPIError(w, r, err, "")
		return 0, 0, false
	}

	return userID, id, true
}

// decodeAndValidate decodes the JSON body into req and applies its
// validation rules. On failure it writes a 400 envelope and returns false.
func decodeAndValidate[T messenger](w http.ResponseWriter, r *http.Request, v *validator.Validate, req *T) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidRequest, err)
		return false
	}

	msg, err := validationMessage(v, *req)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msg, err)
		return false
	}
	return true
}
