// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"strings"
)

var (
	// ErrForbidden signals an ownership authorization denial.
	ErrForbidden = errors.New("forbidden")
	// ErrEntryNotFound is returned when an entry does not exist.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrEntryNotCreated signals a failed create.
	ErrEntryNotCreated = errors.New("entry not created")
	// ErrEntryNotUpdated signals a failed edit.
	ErrEntryNotUpdated = errors.New("entry not updated")
	// ErrEntryNotDeleted signals a failed delete.
	ErrEntryNotDeleted = errors.New("entry not deleted")
	// ErrEntriesNotListed signals a failed list.
	ErrEntriesNotListed = errors.New("entries not listed")
	// ErrUserNotSynchronised signals a failed identity upsert.
	ErrUserNotSynchronised = errors.New("user not synchronised")
)

// FieldViolation is a single business-rule failure scoped to a request field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError aggregates the field violations of one request.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError wraps violations into an error.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AsValidationError unwraps err into a ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
