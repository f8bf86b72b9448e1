package feedback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/pkg/ctxutil"
)

// RecordSwipe appends one swipe record. Suggestions have no durable post, so
// PostID is always nil; the content snapshot is kept for later analysis.
func (s *Service) RecordSwipe(ctx context.Context, input RecordSwipeInput) (*domain.SwipeRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	suggestionID := input.SuggestionID
	rec, err := s.swipes.Create(ctx, &domain.SwipeRecord{
		ID:              uuid.New(),
		UserID:          userID,
		SuggestionID:    &suggestionID,
		ContentSnapshot: trimOrNil(input.ContentSnapshot),
		Action:          input.Action,
		CreatedAt:       s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create swipe: %w", err)
	}

	s.log.InfoContext(ctx, "swipe recorded",
		slog.String("user_id", userID.String()),
		slog.String("suggestion_id", suggestionID.String()),
		slog.String("action", input.Action.String()),
	)

	return rec, nil
}
