package feedback

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
	MaxSnapshotLength   = 10000
	MaxSwipedLookup     = 200
)

type swipeRepo interface {
	Create(ctx context.Context, rec *domain.SwipeRecord) (*domain.SwipeRecord, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.SwipeRecord, error)
	SwipedSuggestionIDs(ctx context.Context, userID uuid.UUID, suggestionIDs []uuid.UUID) ([]uuid.UUID, error)
}

// Service appends swipe feedback and derives statistics from it.
type Service struct {
	swipes swipeRepo
	clock  clockwork.Clock
	log    *slog.Logger
}

// NewService creates a new feedback Service.
func NewService(log *slog.Logger, swipes swipeRepo, clock clockwork.Clock) *Service {
	return &Service{
		swipes: swipes,
		clock:  clock,
		log:    log.With("service", "feedback"),
	}
}
