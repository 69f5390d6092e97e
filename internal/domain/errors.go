package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrConfig marks a whole-run failure caused by missing or broken
	// configuration (absent file-store credentials).
	ErrConfig = errors.New("configuration error")
	// ErrDiscovery marks a whole-run failure of the remote listing call.
	ErrDiscovery = errors.New("discovery error")
	// ErrNoFiles means discovery completed but matched nothing.
	ErrNoFiles = errors.New("no source files found")
	// ErrNoQuestions means every discovered file was processed but none
	// yielded a single valid question.
	ErrNoQuestions = errors.New("no valid questions found")
	// ErrValidation marks a structural validation failure.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned by the persistence layer for missing rows.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by the persistence layer for unique
	// constraint violations.
	ErrAlreadyExists = errors.New("already exists")
)

// ValidationError carries the field and reason of a validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
