package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrTransientIO        = errors.New("transient io")
	ErrWorkerFailure      = errors.New("worker failure")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// CapacityError is returned when the owner already holds the maximum number
// of active suggestions.
type CapacityError struct {
	Current int
	Max     int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: %d of %d active suggestions", e.Current, e.Max)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// ConflictError carries the id of the run that is already in flight so the
// caller can observe it instead of starting another one.
type ConflictError struct {
	RunID uuid.UUID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: generation run %s already in progress", e.RunID)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// PreconditionError reports a prerequisite the owner has not met yet.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

func (e *PreconditionError) Unwrap() error { return ErrPreconditionFailed }

// WorkerError carries the message reported by the generation worker.
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	if e.Message == "" {
		return "worker failure"
	}
	return "worker failure: " + e.Message
}

func (e *WorkerError) Unwrap() error { return ErrWorkerFailure }
