package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/sprint"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []ErrorField `json:"details,omitempty"`
}

// ErrorField describes a field-specific error.
type ErrorField struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// BadRequest sends a 400 Bad Request error.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, "INVALID_REQUEST", message, http.StatusBadRequest)
}

// ValidationError sends a 400 validation error with field details.
func ValidationError(w http.ResponseWriter, field, issue string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "VALIDATION_ERROR",
			Message: "validation failed",
			Details: []ErrorField{
				{Field: field, Issue: issue},
			},
		},
	})
}

// NotFound sends a 404 Not Found error.
func NotFound(w http.ResponseWriter, resource string) {
	Error(w, "NOT_FOUND", resource+" not found", http.StatusNotFound)
}

// InternalError sends a 500 Internal Server Error.
// Logs the error server-side with request context but returns a generic
// message to the client to prevent information disclosure.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		slog.ErrorContext(r.Context(), "Internal server error", "error", err)
	}
	Error(w, "INTERNAL_ERROR", "an internal error occurred", http.StatusInternalServerError)
}

// Error sends a generic error response.
func Error(w http.ResponseWriter, code, message string, statusCode int) {
	writeJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// FromDomainError maps domain errors to HTTP responses.
func FromDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	// Validation errors (400)
	case errors.Is(err, domain.ErrNameRequired):
		ValidationError(w, "name", "required field missing")
	case errors.Is(err, domain.ErrInvalidID):
		ValidationError(w, "id", "invalid ID format")
	case errors.Is(err, domain.ErrInvalidDate):
		ValidationError(w, "date", "invalid date")
	case errors.Is(err, domain.ErrInvalidAvailability):
		ValidationError(w, "value", "must be one of \"1\", \"0.5\", \"X\"")

	// Not found errors (404)
	case errors.Is(err, domain.ErrTeamNotFound):
		NotFound(w, "team")
	case errors.Is(err, domain.ErrMemberNotFound):
		NotFound(w, "member")
	case errors.Is(err, domain.ErrSettingsNotFound):
		NotFound(w, "sprint settings")
	case errors.Is(err, domain.ErrNotFound):
		NotFound(w, "resource")

	// Detection overflow (422): the target date is too far from the
	// configured anchor, which the client cannot fix by retrying.
	case errors.Is(err, sprint.ErrDetectionOverflow):
		Error(w, "SPRINT_DETECTION_OVERFLOW", err.Error(), http.StatusUnprocessableEntity)

	// Unknown errors (500) - log server-side, return generic message
	default:
		InternalError(w, r, err)
	}
}
