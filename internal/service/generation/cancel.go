package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/pkg/ctxutil"
)

// CancelGeneration cancels the owner's pending or generating run.
// Returns domain.ErrNotFound when there is nothing to cancel. Notifying the
// worker is best effort: it stops on its own once it sees the cancelled status.
func (s *Service) CancelGeneration(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	run, err := s.runs.CancelInFlight(ctx, userID, s.clock.Now().UTC())
	if err != nil {
		return fmt.Errorf("cancel run: %w", err)
	}

	if err := s.dispatcher.Cancel(ctx, run.ID); err != nil {
		s.log.WarnContext(ctx, "notify worker of cancellation",
			slog.String("run_id", run.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "generation run cancelled",
		slog.String("run_id", run.ID.String()),
		slog.Int("generated", run.Generated),
	)

	return nil
}
