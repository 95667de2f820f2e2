package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/people-api/internal/api/shared"
	"github.com/phrazzld/people-api/internal/domain"
)

// Safe messages sent to clients.
const (
	msgPersonNotFound = "This person does not exist."
	msgUnexpected     = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrPersonNotFound):
		return http.StatusNotFound

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	switch {
	case errors.Is(err, domain.ErrPersonNotFound):
		return msgPersonNotFound
	default:
		return msgUnexpected
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// redacted error. defaultMessage replaces the generic 500 message when set.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMessage != "" {
		message = defaultMessage
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
