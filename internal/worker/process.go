package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// Process generates the remaining suggestions of a generating run.
//
// Each suggestion is stored in the same transaction as the progress update,
// and the update only matches a generating run, so nothing is written after
// the run was cancelled or failed elsewhere. Process returns nil when the run
// completes or is stopped from outside.
func (r *Runner) Process(ctx context.Context, run *domain.GenerationRun) error {
	ctx = withRunIdentity(ctx, run)
	r.log.InfoContext(ctx, "run started",
		slog.Int("requested", run.Requested),
		slog.Int("generated", run.Generated),
	)

	generated := run.Generated
	var used []string
	previous := make([]string, 0, run.Requested)

	for generated < run.Requested {
		if ctx.Err() != nil {
			return r.interrupted(ctx, run, generated)
		}

		postType := pickPostType(run.PostTypes, generated)
		text, err := r.generateOne(ctx, postType, generated+1, run.Requested, previous)
		if err != nil {
			if ctx.Err() != nil {
				return r.interrupted(ctx, run, generated)
			}
			r.log.ErrorContext(ctx, "llm completion failed",
				slog.Int("index", generated+1),
				slog.String("error", err.Error()),
			)
			return r.fail(ctx, run, fmt.Sprintf("could not generate suggestion %d of %d", generated+1, run.Requested))
		}

		next := generated + 1
		err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
			now := r.clock.Now().UTC()
			if err := r.runs.UpdateProgress(ctx, run.ID, next, domain.ProgressFor(next, run.Requested), now); err != nil {
				return err
			}
			_, err := r.suggestions.Create(ctx, &domain.Suggestion{
				ID:        uuid.New(),
				UserID:    run.UserID,
				RunID:     run.ID,
				Content:   text,
				Status:    domain.SuggestionStatusActive,
				PostType:  optional(postType),
				CreatedAt: now,
				UpdatedAt: now,
			})
			return err
		})
		if errors.Is(err, domain.ErrNotFound) {
			r.log.InfoContext(ctx, "run left generating state, stopping", slog.Int("generated", generated))
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return r.interrupted(ctx, run, generated)
			}
			r.log.ErrorContext(ctx, "store suggestion", slog.String("error", err.Error()))
			return r.fail(ctx, run, "could not store generated suggestion")
		}

		generated = next
		previous = append(previous, text)
		if postType != "" && !slices.Contains(used, postType) {
			used = append(used, postType)
		}
	}

	_, err := r.runs.Complete(context.WithoutCancel(ctx), run.ID, generated, used, r.clock.Now().UTC())
	if errors.Is(err, domain.ErrNotFound) {
		r.log.InfoContext(ctx, "run left generating state before completion")
		return nil
	}
	if err != nil {
		return fmt.Errorf("complete run: %w", err)
	}

	r.log.InfoContext(ctx, "run completed", slog.Int("generated", generated))
	return nil
}

func (r *Runner) generateOne(ctx context.Context, postType string, index, total int, previous []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ItemTimeout)
	defer cancel()
	return r.llm.Complete(ctx, buildPrompt(postType, index, total, previous))
}

// interrupted handles a cancelled run context. A user cancellation was
// already persisted by the controller; a shutdown fails the run so the owner
// is not left polling it.
func (r *Runner) interrupted(ctx context.Context, run *domain.GenerationRun, generated int) error {
	cause := context.Cause(ctx)
	if errors.Is(cause, errCancelled) {
		r.log.InfoContext(ctx, "run cancelled", slog.Int("generated", generated))
		return nil
	}
	if err := r.fail(ctx, run, "generation interrupted, please try again"); err != nil && !errors.Is(err, domain.ErrWorkerFailure) {
		return err
	}
	return cause
}

// fail marks the run failed with a user-facing message and returns it as a
// WorkerError.
func (r *Runner) fail(ctx context.Context, run *domain.GenerationRun, message string) error {
	_, err := r.runs.Fail(context.WithoutCancel(ctx), run.ID, message, r.clock.Now().UTC())
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("mark run failed: %w", err)
	}
	return &domain.WorkerError{Message: message}
}

func pickPostType(types []string, i int) string {
	if len(types) == 0 {
		return ""
	}
	return types[i%len(types)]
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
