package domain

import (
	"errors"
)

// ValidationError signals that a caller-supplied field violates a payment
// invariant. It is always the caller's fault and is never retried internally.
//
// Message is the complete caller-facing text. Err carries the cause for
// errors.Is/As only and is never rendered, so wrapping cannot repeat a
// message that already embeds it.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
