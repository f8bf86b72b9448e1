package suggestion

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// SetStatusInput moves one suggestion out of active.
type SetStatusInput struct {
	SuggestionID uuid.UUID
	Status       domain.SuggestionStatus
}

// Validate checks all fields and collects all errors.
func (i SetStatusInput) Validate() error {
	var errs []domain.FieldError
	if i.SuggestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !i.Status.IsTerminal() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be used or dismissed"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput filters the owner's suggestions.
type ListInput struct {
	Status domain.SuggestionStatus
	RunID  *uuid.UUID
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxLimit)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
