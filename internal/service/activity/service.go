package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/pkg/ctxutil"
)

type postingRepo interface {
	ListEvents(ctx context.Context, userID uuid.UUID, since time.Time) ([]*domain.PostingEvent, error)
}

type profileRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
}

// Service computes posting streaks for the owner.
type Service struct {
	postings postingRepo
	profiles profileRepo
	clock    clockwork.Clock
	log      *slog.Logger
}

// NewService creates a new activity Service.
func NewService(log *slog.Logger, postings postingRepo, profiles profileRepo, clock clockwork.Clock) *Service {
	return &Service{
		postings: postings,
		profiles: profiles,
		clock:    clock,
		log:      log.With("service", "activity"),
	}
}

// GetStreaks computes the owner's streaks in their profile timezone, falling
// back to UTC when there is no profile.
func (s *Service) GetStreaks(ctx context.Context) (domain.Streaks, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Streaks{}, domain.ErrUnauthorized
	}

	loc := time.UTC
	profile, err := s.profiles.Get(ctx, userID)
	switch {
	case err == nil:
		loc = ParseTimezone(profile.Timezone)
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Streaks{}, fmt.Errorf("get profile: %w", err)
	}

	events, err := s.postings.ListEvents(ctx, userID, time.Time{})
	if err != nil {
		return domain.Streaks{}, fmt.Errorf("list posting events: %w", err)
	}

	streaks := ComputeStreaks(events, s.clock.Now(), loc)

	s.log.DebugContext(ctx, "streaks computed",
		slog.String("user_id", userID.String()),
		slog.Int("events", len(events)),
		slog.Int("current", streaks.Current),
		slog.Int("best", streaks.Best),
	)

	return streaks, nil
}
