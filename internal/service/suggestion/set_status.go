package suggestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/pkg/ctxutil"
)

// SetStatus transitions an active suggestion to used or dismissed.
//
// Repeating the same transition returns the stored record unchanged, so the
// active count is decremented at most once. Moving a used suggestion to
// dismissed (or back) is rejected.
func (s *Service) SetStatus(ctx context.Context, input SetStatusInput) (*domain.Suggestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.suggestions.TransitionFromActive(ctx, userID, input.SuggestionID, input.Status, s.clock.Now().UTC())
	if err == nil {
		s.log.InfoContext(ctx, "suggestion status changed",
			slog.String("user_id", userID.String()),
			slog.String("suggestion_id", updated.ID.String()),
			slog.String("status", updated.Status.String()),
		)
		return updated, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("transition suggestion: %w", err)
	}

	// Either missing or already out of active: tell them apart.
	current, err := s.suggestions.GetByID(ctx, userID, input.SuggestionID)
	if err != nil {
		return nil, fmt.Errorf("get suggestion: %w", err)
	}
	if current.Status == input.Status {
		return current, nil
	}
	return nil, domain.NewValidationError("status",
		fmt.Sprintf("suggestion is already %s", current.Status))
}
