// Package profile implements the user profile repository.
package profile

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/postcraft-backend/internal/adapter/postgres"
	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// Repo provides user profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const profileColumns = `user_id, timezone, onboarding_completed_at, updated_at`

const getSQL = `
SELECT ` + profileColumns + `
FROM user_profiles
WHERE user_id = $1`

const upsertSQL = `
INSERT INTO user_profiles (user_id, timezone, onboarding_completed_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (user_id) DO UPDATE
SET timezone = EXCLUDED.timezone,
    onboarding_completed_at = COALESCE(user_profiles.onboarding_completed_at, EXCLUDED.onboarding_completed_at),
    updated_at = EXCLUDED.updated_at
RETURNING ` + profileColumns

type profileRow struct {
	UserID                uuid.UUID  `db:"user_id"`
	Timezone              string     `db:"timezone"`
	OnboardingCompletedAt *time.Time `db:"onboarding_completed_at"`
	UpdatedAt             time.Time  `db:"updated_at"`
}

func (r profileRow) toDomain() *domain.UserProfile {
	return &domain.UserProfile{
		UserID:                r.UserID,
		Timezone:              r.Timezone,
		OnboardingCompletedAt: r.OnboardingCompletedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

// Get returns the owner's profile or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	var row profileRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getSQL, userID); err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}
	return row.toDomain(), nil
}

// Upsert creates or updates the profile. An existing onboarding timestamp is
// never cleared or moved.
func (r *Repo) Upsert(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	var row profileRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, upsertSQL,
		p.UserID,
		p.Timezone,
		p.OnboardingCompletedAt,
		p.UpdatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.UserID)
	}
	return row.toDomain(), nil
}
