package domain

import "fmt"

// ValidationError reports malformed or logically invalid input. It is always
// fixable by the caller and its message is safe to surface verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConflictError reports that the requested change lost to existing state:
// an overlapping availability window or an already-booked slot.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// NotFoundError reports that a referenced entity does not exist or is not
// visible to the caller (unknown slug, inactive link).
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string { return e.Reason }
