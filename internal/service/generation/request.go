package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/pkg/ctxutil"
)

// ReasonOnboardingIncomplete is the precondition reason shown when the owner
// has not finished onboarding.
const ReasonOnboardingIncomplete = "complete onboarding first"

// RequestGeneration admits a new generation run for the owner and hands it to
// the worker without waiting for completion.
//
// Checks run in order: onboarding precondition, capacity cap, in-flight run.
// A worker failure while starting marks the run failed and is not retried.
func (s *Service) RequestGeneration(ctx context.Context) (*RequestResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.checkPrecondition(ctx, userID); err != nil {
		return nil, err
	}

	active, err := s.suggestions.CountActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count active suggestions: %w", err)
	}
	if active >= s.cfg.MaxActive {
		return nil, &domain.CapacityError{Current: active, Max: s.cfg.MaxActive}
	}

	existing, err := s.runs.GetInFlight(ctx, userID)
	switch {
	case err == nil:
		return nil, &domain.ConflictError{RunID: existing.ID}
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get in-flight run: %w", err)
	}

	now := s.clock.Now().UTC()
	run, err := s.runs.Create(ctx, &domain.GenerationRun{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    domain.RunStatusPending,
		Requested: min(s.cfg.BatchSize, s.cfg.MaxActive-active),
		PostTypes: s.cfg.PostTypes,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Lost a race with a concurrent request; surface the winner.
			return nil, s.conflictWithInFlight(ctx, userID)
		}
		return nil, fmt.Errorf("create run: %w", err)
	}

	if err := s.dispatcher.Start(ctx, run); err != nil {
		s.log.ErrorContext(ctx, "dispatch generation run",
			slog.String("run_id", run.ID.String()),
			slog.String("error", err.Error()),
		)
		msg := "generation worker unavailable"
		if _, failErr := s.runs.Fail(ctx, run.ID, msg, s.clock.Now().UTC()); failErr != nil && !errors.Is(failErr, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "mark undispatched run failed",
				slog.String("run_id", run.ID.String()),
				slog.String("error", failErr.Error()),
			)
		}
		return nil, fmt.Errorf("start run %s: %w", run.ID, &domain.WorkerError{Message: msg})
	}

	s.log.InfoContext(ctx, "generation run requested",
		slog.String("run_id", run.ID.String()),
		slog.Int("requested", run.Requested),
		slog.Int("active", active),
	)

	return &RequestResult{
		RunID:     run.ID,
		Requested: run.Requested,
		Status:    run.Status,
	}, nil
}

func (s *Service) checkPrecondition(ctx context.Context, userID uuid.UUID) error {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.PreconditionError{Reason: ReasonOnboardingIncomplete}
		}
		return fmt.Errorf("get profile: %w", err)
	}
	if !profile.HasCompletedOnboarding() {
		return &domain.PreconditionError{Reason: ReasonOnboardingIncomplete}
	}
	return nil
}

func (s *Service) conflictWithInFlight(ctx context.Context, userID uuid.UUID) error {
	existing, err := s.runs.GetInFlight(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// The winner already finished; report a conflict without an id
			// so the caller refetches instead of starting another run.
			return &domain.ConflictError{}
		}
		return fmt.Errorf("re-read in-flight run: %w", err)
	}
	return &domain.ConflictError{RunID: existing.ID}
}
