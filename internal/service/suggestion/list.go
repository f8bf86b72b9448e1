package suggestion

import (
	"context"
	"fmt"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/pkg/ctxutil"
)

// ListActive returns every active suggestion of the owner. ActiveCount comes
// from a separate count so it stays authoritative even if the list is capped.
func (s *Service) ListActive(ctx context.Context) (*ActiveSet, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.suggestions.List(ctx, userID, domain.SuggestionFilter{
		Status: domain.SuggestionStatusActive,
		Limit:  MaxLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("list active suggestions: %w", err)
	}

	count, err := s.suggestions.CountActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count active suggestions: %w", err)
	}

	return &ActiveSet{
		Suggestions: items,
		ActiveCount: count,
		MaxActive:   s.maxActive,
		CanGenerate: count < s.maxActive,
	}, nil
}

// List returns the owner's suggestions matching input, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Suggestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.SuggestionFilter{Status: input.Status, Limit: input.Limit}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if input.RunID != nil {
		f.RunID = *input.RunID
	}

	items, err := s.suggestions.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	return items, nil
}
