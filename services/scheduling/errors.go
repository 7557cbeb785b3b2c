package scheduling

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound indicates a preview session id that does not exist or
// has expired.
var ErrSessionNotFound = errors.New("schedule session not found or expired")

// ValidationError reports a malformed recurrence specification or check
// request. Validation happens before any network I/O.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
