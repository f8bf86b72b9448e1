package feedback

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// RecordSwipeInput is one like/dislike gesture on a suggestion.
type RecordSwipeInput struct {
	SuggestionID    uuid.UUID
	Action          domain.SwipeAction
	ContentSnapshot *string
}

// Validate checks all fields and collects all errors.
func (i RecordSwipeInput) Validate() error {
	var errs []domain.FieldError
	if i.SuggestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "suggestionId", Message: "required"})
	}
	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be like or dislike"})
	}
	if i.ContentSnapshot != nil && utf8.RuneCountInString(*i.ContentSnapshot) > MaxSnapshotLength {
		errs = append(errs, domain.FieldError{Field: "contentSnapshot", Message: fmt.Sprintf("max %d characters", MaxSnapshotLength)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateLimit(limit int) error {
	if limit < 0 || limit > MaxHistoryLimit {
		return domain.NewValidationError("limit", fmt.Sprintf("must be between 0 and %d", MaxHistoryLimit))
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
