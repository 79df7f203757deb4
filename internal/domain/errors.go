package domain

import "errors"

// Sentinel errors for lookups that expect exactly one row.
var (
	// ErrNotFound means a lookup by id or name matched no row.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous means a lookup matched more than one row where exactly one was expected.
	ErrAmbiguous = errors.New("ambiguous result")
)

// ValidationError carries a user-facing message for malformed or missing input.
// Handlers surface the message as an inline form error; nothing is persisted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError returns a ValidationError with the given user-facing message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
