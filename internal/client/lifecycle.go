package client

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// MsgDismissed is shown after a suggestion is dismissed.
const MsgDismissed = "Suggestion dismissed"

type suggestionSource interface {
	ListActive(ctx context.Context) (*ActiveSet, error)
	SetSuggestionStatus(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus) (*domain.Suggestion, error)
}

// ActiveView is a snapshot of the local suggestion projection.
type ActiveView struct {
	Suggestions []domain.Suggestion
	ActiveCount int
	MaxActive   int
	CanGenerate bool
}

// Lifecycle keeps a local projection of the owner's active suggestions.
// Status changes are applied optimistically and the projection is replaced
// by a fresh server read after every change.
type Lifecycle struct {
	src      suggestionSource
	notifier Notifier
	log      *slog.Logger

	mu          sync.Mutex
	suggestions []domain.Suggestion
	activeCount int
	maxActive   int
	canGenerate bool
}

// NewLifecycle creates an empty Lifecycle. Call Refresh to load it.
func NewLifecycle(src suggestionSource, notifier Notifier, logger *slog.Logger) *Lifecycle {
	return &Lifecycle{
		src:         src,
		notifier:    notifier,
		log:         logger.With("client", "lifecycle"),
		maxActive:   domain.MaxActiveSuggestions,
		canGenerate: true,
	}
}

// Refresh replaces the projection with the server's active set.
func (l *Lifecycle) Refresh(ctx context.Context) error {
	set, err := l.src.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("refresh suggestions: %w", err)
	}

	list := make([]domain.Suggestion, 0, len(set.Suggestions))
	for _, s := range set.Suggestions {
		list = append(list, *s)
	}

	l.mu.Lock()
	l.suggestions = list
	l.activeCount = set.ActiveCount
	l.maxActive = set.MaxActive
	l.canGenerate = set.CanGenerate
	l.mu.Unlock()
	return nil
}

// SetStatus moves a suggestion to used or dismissed. A suggestion that is no
// longer active locally does not decrement the counter again.
func (l *Lifecycle) SetStatus(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus) error {
	if !status.IsTerminal() {
		return domain.NewValidationError("status", "must be used or dismissed")
	}

	l.apply(id, status)

	_, err := l.src.SetSuggestionStatus(ctx, id, status)
	if refreshErr := l.Refresh(ctx); refreshErr != nil {
		l.log.WarnContext(ctx, "refresh after status change failed",
			slog.String("suggestion_id", id.String()),
			slog.String("error", refreshErr.Error()),
		)
	}
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return nil
}

// MarkAsUsed marks a suggestion as used.
func (l *Lifecycle) MarkAsUsed(ctx context.Context, id uuid.UUID) error {
	return l.SetStatus(ctx, id, domain.SuggestionStatusUsed)
}

// Dismiss dismisses a suggestion and notifies the user.
func (l *Lifecycle) Dismiss(ctx context.Context, id uuid.UUID) error {
	if err := l.SetStatus(ctx, id, domain.SuggestionStatusDismissed); err != nil {
		return err
	}
	l.notifier.Info(MsgDismissed)
	return nil
}

// View returns a copy of the projection.
func (l *Lifecycle) View() ActiveView {
	l.mu.Lock()
	defer l.mu.Unlock()
	list := make([]domain.Suggestion, len(l.suggestions))
	copy(list, l.suggestions)
	return ActiveView{
		Suggestions: list,
		ActiveCount: l.activeCount,
		MaxActive:   l.maxActive,
		CanGenerate: l.canGenerate,
	}
}

func (l *Lifecycle) apply(id uuid.UUID, status domain.SuggestionStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.suggestions {
		s := &l.suggestions[i]
		if s.ID != id {
			continue
		}
		if s.IsActive() && l.activeCount > 0 {
			l.activeCount--
		}
		s.Status = status
		l.canGenerate = l.activeCount < l.maxActive
		return
	}
}
