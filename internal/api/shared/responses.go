package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/redact"
)

// Envelope status values.
const (
	StatusSuccess      = "success"
	StatusError        = "error"
	StatusServerError  = "error_server"
	StatusAccessDenied = "access_denied"
)

// Envelope wraps every JSON response body.
type Envelope struct {
	Message        string `json:"message"`
	Data           any    `json:"data"`
	Status         string `json:"status"`
	HTTPStatus     string `json:"HTTPStatus"`
	HTTPStatusCode int    `json:"HTTPStatusCode"`
}

// NewEnvelope builds the envelope for code. The status field is derived from
// the code: 403 is access_denied, 5xx is error_server, any other 4xx is error.
func NewEnvelope(code int, message string, data any) Envelope {
	return Envelope{
		Message:        message,
		Data:           data,
		Status:         StatusFor(code),
		HTTPStatus:     http.StatusText(code),
		HTTPStatusCode: code,
	}
}

// StatusFor returns the envelope status value for an HTTP status code.
func StatusFor(code int) string {
	switch {
	case code == http.StatusForbidden || code == http.StatusUnauthorized:
		return StatusAccessDenied
	case code >= http.StatusInternalServerError:
		return StatusServerError
	case code >= http.StatusBadRequest:
		return StatusError
	default:
		return StatusSuccess
	}
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level. Use for operational issues such as
// repeated auth failures.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// RespondWithJSON writes data as a raw JSON body with the given status code.
// Most handlers want RespondOK instead.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// RespondOK writes a 200 success envelope.
func RespondOK(w http.ResponseWriter, r *http.Request, message string, data any) {
	RespondWithJSON(w, r, http.StatusOK, NewEnvelope(http.StatusOK, message, data))
}

// RespondWithError writes an error envelope with null data.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logger.FromContext(r.Context()).Debug("sending error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, NewEnvelope(status, message, nil))
}

// RespondWithErrorAndLog writes an error envelope carrying only userMessage and
// logs the redacted err alongside it.
//
// Log level strategy:
//   - 5xx errors: always ERROR
//   - 4xx errors: DEBUG, or WARN with WithElevatedLogLevel
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	logAttrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	// The raw error never reaches the client
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	} else if responseOpts.elevateLogLevel && status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, NewEnvelope(status, userMessage, nil))
}
