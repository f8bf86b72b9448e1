package suggestion

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type suggestionRepo interface {
	List(ctx context.Context, userID uuid.UUID, f domain.SuggestionFilter) ([]*domain.Suggestion, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Suggestion, error)
	CountActive(ctx context.Context, userID uuid.UUID) (int, error)
	TransitionFromActive(ctx context.Context, userID, id uuid.UUID, status domain.SuggestionStatus, now time.Time) (*domain.Suggestion, error)
}

// Service manages the suggestion lifecycle: active to used or dismissed.
type Service struct {
	suggestions suggestionRepo
	clock       clockwork.Clock
	maxActive   int
	log         *slog.Logger
}

// NewService creates a new suggestion Service. maxActive <= 0 means the
// default capacity cap.
func NewService(log *slog.Logger, suggestions suggestionRepo, clock clockwork.Clock, maxActive int) *Service {
	if maxActive <= 0 {
		maxActive = domain.MaxActiveSuggestions
	}
	return &Service{
		suggestions: suggestions,
		clock:       clock,
		maxActive:   maxActive,
		log:         log.With("service", "suggestion"),
	}
}
