package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNoSession       = errors.New("no active session")
	ErrInvalidResponse = errors.New("invalid server response")
)

// APIError is a non-2xx reply from the ranking service. Message carries the
// server body text when the server sent one, otherwise a status-derived
// fallback; the UI shows Message verbatim.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError builds the error for op with the given status and body text.
func NewAPIError(op string, status int, body string) *APIError {
	msg := body
	if msg == "" {
		msg = fmt.Sprintf("%s failed with status %d", op, status)
	}
	return &APIError{Op: op, Status: status, Message: msg}
}

// Invalid wraps ErrInvalidInput with a field-level message.
func Invalid(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, message)
}
