package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/people-api/internal/platform/logger"
	"github.com/phrazzld/people-api/internal/redact"
	"github.com/phrazzld/people-api/internal/validation"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Detail  string `json:"detail"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID string `json:"trace_id,omitempty"`
}

// ValidationErrorResponse is the body of a 422 response. Detail lists every
// field that failed, across all parameter sources of the request.
type ValidationErrorResponse struct {
	Detail  validation.Violations `json:"detail"`
	TraceID string                `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		requestLogger(r).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithViolations writes a 422 response listing every violation.
// Violation inputs are already masked for secret fields.
func RespondWithViolations(w http.ResponseWriter, r *http.Request, violations validation.Violations) {
	traceID := GetTraceID(r.Context())

	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, fmt.Sprintf("%s:%s", v.Source(), v.Field()))
	}

	requestLogger(r).Debug("request validation failed",
		"status_code", http.StatusUnprocessableEntity,
		"violations", len(violations),
		"fields", fields,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Detail:  violations,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes a JSON error response and also logs the detailed error.
// The client only sees userMessage. The redacted error goes to the log at
// ERROR level for 5xx responses and DEBUG level otherwise.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	// Note: We never include the raw error string in the response
	errorResponse := ErrorResponse{
		Detail:  userMessage,
		Code:    status,
		TraceID: traceID,
	}

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	// Include the redacted error details (but only in the logs)
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", redact.Error(err)))
		logAttrs = append(logAttrs, slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	requestLogger(r).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, errorResponse)
}

func requestLogger(r *http.Request) *slog.Logger {
	if r == nil {
		return slog.Default()
	}
	return logger.FromContextOrDefault(r.Context(), slog.Default())
}
