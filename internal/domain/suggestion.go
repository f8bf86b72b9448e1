package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxActiveSuggestions is the default capacity cap: the number of active
// suggestions an owner may hold before generation is blocked.
const MaxActiveSuggestions = 10

// SuggestionStatus is the lifecycle state of a generated suggestion.
type SuggestionStatus string

const (
	SuggestionStatusActive    SuggestionStatus = "active"
	SuggestionStatusUsed      SuggestionStatus = "used"
	SuggestionStatusDismissed SuggestionStatus = "dismissed"
)

func (s SuggestionStatus) String() string { return string(s) }

func (s SuggestionStatus) IsValid() bool {
	switch s {
	case SuggestionStatusActive, SuggestionStatusUsed, SuggestionStatusDismissed:
		return true
	}
	return false
}

// IsTerminal reports whether the status can no longer change.
func (s SuggestionStatus) IsTerminal() bool {
	return s == SuggestionStatusUsed || s == SuggestionStatusDismissed
}

// Suggestion is one AI-generated post idea.
type Suggestion struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RunID     uuid.UUID
	Content   string
	Status    SuggestionStatus
	PostType  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the suggestion counts against the capacity cap.
func (s *Suggestion) IsActive() bool {
	return s.Status == SuggestionStatusActive
}

// SuggestionFilter narrows suggestion listings. Zero values mean "no filter".
type SuggestionFilter struct {
	Status SuggestionStatus
	RunID  uuid.UUID
	Limit  int
}
