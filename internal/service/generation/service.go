package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type runRepo interface {
	Create(ctx context.Context, run *domain.GenerationRun) (*domain.GenerationRun, error)
	GetByID(ctx context.Context, userID, runID uuid.UUID) (*domain.GenerationRun, error)
	GetInFlight(ctx context.Context, userID uuid.UUID) (*domain.GenerationRun, error)
	GetLatest(ctx context.Context, userID uuid.UUID) (*domain.GenerationRun, error)
	ListByUser(ctx context.Context, userID uuid.UUID, statuses []domain.RunStatus, limit int) ([]*domain.GenerationRun, error)
	CancelInFlight(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.GenerationRun, error)
	Fail(ctx context.Context, runID uuid.UUID, message string, now time.Time) (*domain.GenerationRun, error)
}

type suggestionCounter interface {
	CountActive(ctx context.Context, userID uuid.UUID) (int, error)
}

type profileRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
}

// dispatcher hands runs to the generation worker.
type dispatcher interface {
	Start(ctx context.Context, run *domain.GenerationRun) error
	Cancel(ctx context.Context, runID uuid.UUID) error
}

// Config holds the controller limits.
type Config struct {
	MaxActive int
	BatchSize int
	PostTypes []string
}

// Service is the generation controller: it admits new runs under the
// capacity cap and the one-run-in-flight rule and cancels them.
type Service struct {
	runs        runRepo
	suggestions suggestionCounter
	profiles    profileRepo
	dispatcher  dispatcher
	clock       clockwork.Clock
	cfg         Config
	log         *slog.Logger
}

// NewService creates a new generation Service.
func NewService(
	log *slog.Logger,
	runs runRepo,
	suggestions suggestionCounter,
	profiles profileRepo,
	dispatcher dispatcher,
	clock clockwork.Clock,
	cfg Config,
) *Service {
	if cfg.MaxActive <= 0 {
		cfg.MaxActive = domain.MaxActiveSuggestions
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = cfg.MaxActive
	}
	return &Service{
		runs:        runs,
		suggestions: suggestions,
		profiles:    profiles,
		dispatcher:  dispatcher,
		clock:       clock,
		cfg:         cfg,
		log:         log.With("service", "generation"),
	}
}
