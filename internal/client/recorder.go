package client

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// RecentSwipesCap bounds the recent swipes ring.
const RecentSwipesCap = 10

// DefaultHistoryLimit is how many swipes FetchHistory loads by default.
const DefaultHistoryLimit = 50

type swipeStore interface {
	Authenticated() bool
	RecordSwipe(ctx context.Context, suggestionID uuid.UUID, action domain.SwipeAction, snapshot *string) (*domain.SwipeRecord, error)
	SwipeHistory(ctx context.Context, limit int) ([]*domain.SwipeRecord, error)
}

// Recorder appends swipes and keeps the derived session and all-time views.
type Recorder struct {
	store swipeStore
	log   *slog.Logger

	mu      sync.Mutex
	recent  []domain.SwipeRecord // newest first
	session []*domain.SwipeRecord
	allTime []*domain.SwipeRecord
	swiped  map[uuid.UUID]struct{}
	shown   int
}

// NewRecorder creates an empty Recorder.
func NewRecorder(store swipeStore, logger *slog.Logger) *Recorder {
	return &Recorder{
		store:  store,
		log:    logger.With("client", "recorder"),
		swiped: make(map[uuid.UUID]struct{}),
	}
}

// RecordSwipe persists one swipe and, on success, adds it to the recent
// ring, the session list and the swiped set. Without an owner identity it
// fails with domain.ErrUnauthorized and persists nothing.
func (r *Recorder) RecordSwipe(ctx context.Context, suggestionID uuid.UUID, action domain.SwipeAction, snapshot *string) (bool, error) {
	if !r.store.Authenticated() {
		return false, domain.ErrUnauthorized
	}

	rec, err := r.store.RecordSwipe(ctx, suggestionID, action, snapshot)
	if err != nil {
		r.log.WarnContext(ctx, "record swipe failed",
			slog.String("suggestion_id", suggestionID.String()),
			slog.String("error", err.Error()),
		)
		return false, fmt.Errorf("record swipe: %w", err)
	}

	r.mu.Lock()
	r.recent = append([]domain.SwipeRecord{*rec}, r.recent...)
	if len(r.recent) > RecentSwipesCap {
		r.recent = r.recent[:RecentSwipesCap]
	}
	r.session = append(r.session, rec)
	r.swiped[suggestionID] = struct{}{}
	r.mu.Unlock()
	return true, nil
}

// FetchHistory loads the owner's most recent swipes and repopulates the
// recent and all-time views and the swiped set.
func (r *Recorder) FetchHistory(ctx context.Context, limit int) error {
	if !r.store.Authenticated() {
		return domain.ErrUnauthorized
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	records, err := r.store.SwipeHistory(ctx, limit)
	if err != nil {
		return fmt.Errorf("fetch history: %w", err)
	}

	recent := make([]domain.SwipeRecord, 0, RecentSwipesCap)
	for _, rec := range records {
		if len(recent) == RecentSwipesCap {
			break
		}
		recent = append(recent, *rec)
	}
	swiped := make(map[uuid.UUID]struct{}, len(records))
	for _, rec := range records {
		if rec.SuggestionID != nil {
			swiped[*rec.SuggestionID] = struct{}{}
		}
	}

	r.mu.Lock()
	for _, rec := range r.session {
		if rec.SuggestionID != nil {
			swiped[*rec.SuggestionID] = struct{}{}
		}
	}
	r.recent = recent
	r.allTime = records
	r.swiped = swiped
	r.mu.Unlock()
	return nil
}

// HasBeenSwiped reports whether suggestionID already has a swipe.
func (r *Recorder) HasBeenSwiped(suggestionID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.swiped[suggestionID]
	return ok
}

// IncrementShown counts one suggestion impression. Call it exactly once per
// suggestion rendered to the user; CaptureRate depends on it.
func (r *Recorder) IncrementShown() {
	r.mu.Lock()
	r.shown++
	r.mu.Unlock()
}

// SessionStats derives stats from the swipes recorded in this session.
func (r *Recorder) SessionStats() domain.SwipeStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.CalculateSwipeStats(r.session)
}

// AllTimeStats derives stats from the last fetched history.
func (r *Recorder) AllTimeStats() domain.SwipeStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.CalculateSwipeStats(r.allTime)
}

// CaptureRate is the share of shown suggestions swiped this session.
func (r *Recorder) CaptureRate() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.CaptureRate(domain.CalculateSwipeStats(r.session).Total, r.shown)
}

// RecentSwipes returns up to RecentSwipesCap swipes, newest first.
func (r *Recorder) RecentSwipes() []domain.SwipeRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.SwipeRecord, len(r.recent))
	copy(out, r.recent)
	return out
}
