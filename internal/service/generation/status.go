package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/pkg/ctxutil"
)

// GetStatus returns the run with runID, or the owner's latest run when runID
// is nil. It returns (nil, nil) when the owner has never generated.
func (s *Service) GetStatus(ctx context.Context, runID *uuid.UUID) (*domain.GenerationRun, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if runID != nil {
		run, err := s.runs.GetByID(ctx, userID, *runID)
		if err != nil {
			return nil, fmt.Errorf("get run: %w", err)
		}
		return run, nil
	}

	run, err := s.runs.GetLatest(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest run: %w", err)
	}
	return run, nil
}

// GetActiveRun returns the owner's pending or generating run, or (nil, nil).
func (s *Service) GetActiveRun(ctx context.Context) (*domain.GenerationRun, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	run, err := s.runs.GetInFlight(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get in-flight run: %w", err)
	}
	return run, nil
}

// ListRuns returns the owner's most recent runs, newest first.
func (s *Service) ListRuns(ctx context.Context, limit int) ([]*domain.GenerationRun, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit < 0 || limit > MaxListLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 0 and %d", MaxListLimit))
	}
	if limit == 0 {
		limit = DefaultListLimit
	}

	runs, err := s.runs.ListByUser(ctx, userID, nil, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}
