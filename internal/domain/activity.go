package domain

import (
	"time"

	"github.com/google/uuid"
)

// PostingEvent is one entry of the owner's posting history. PostedAt is nil for
// drafts that were never published.
type PostingEvent struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	PostedAt *time.Time
}

// Streaks holds consecutive-day posting streaks.
type Streaks struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// UserProfile is the part of the owner's profile the generation core reads.
type UserProfile struct {
	UserID                uuid.UUID
	Timezone              string
	OnboardingCompletedAt *time.Time
	UpdatedAt             time.Time
}

// HasCompletedOnboarding reports whether the owner finished the onboarding wizard.
func (p *UserProfile) HasCompletedOnboarding() bool {
	return p != nil && p.OnboardingCompletedAt != nil
}
