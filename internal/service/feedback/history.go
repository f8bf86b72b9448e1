package feedback

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/pkg/ctxutil"
)

// History returns the owner's most recent swipes, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]*domain.SwipeRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	records, err := s.swipes.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list swipes: %w", err)
	}
	return records, nil
}

// Stats derives like/dislike statistics from the owner's last limit swipes.
func (s *Service) Stats(ctx context.Context, limit int) (domain.SwipeStats, error) {
	records, err := s.History(ctx, limit)
	if err != nil {
		return domain.SwipeStats{}, err
	}
	return domain.CalculateSwipeStats(records), nil
}

// Swiped reports which of ids the owner has already swiped. Every id in ids
// appears in the result.
func (s *Service) Swiped(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if len(ids) > MaxSwipedLookup {
		return nil, domain.NewValidationError("ids", fmt.Sprintf("max %d ids", MaxSwipedLookup))
	}

	out := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		out[id] = false
	}
	if len(ids) == 0 {
		return out, nil
	}

	swiped, err := s.swipes.SwipedSuggestionIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("lookup swiped suggestions: %w", err)
	}
	for _, id := range swiped {
		out[id] = true
	}
	return out, nil
}
