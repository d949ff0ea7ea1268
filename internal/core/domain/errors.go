// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a referenced category, product, variant or
// movement does not exist. Repositories return it wrapped with context.
var ErrNotFound = errors.New("not found")

// ValidationError reports bad input rejected before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
