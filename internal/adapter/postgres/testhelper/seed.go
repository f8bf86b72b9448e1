package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// SeedProfile creates a profile that has completed onboarding.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) domain.UserProfile {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.UserProfile{
		UserID:                uuid.New(),
		Timezone:              "UTC",
		OnboardingCompletedAt: &now,
		UpdatedAt:             now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_profiles (user_id, timezone, onboarding_completed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)`,
		p.UserID, p.Timezone, p.OnboardingCompletedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}
	return p
}

// SeedRun creates a run with the given status for userID.
func SeedRun(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, status domain.RunStatus, requested int) domain.GenerationRun {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	r := domain.GenerationRun{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    status,
		Requested: requested,
		PostTypes: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if status.IsTerminal() {
		r.CompletedAt = &now
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO generation_runs (id, user_id, status, requested, post_types, created_at, completed_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $6)`,
		r.ID, r.UserID, string(r.Status), r.Requested, r.PostTypes, r.CreatedAt, r.CompletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRun: %v", err)
	}
	return r
}

// SeedSuggestions creates n active suggestions for userID under runID.
func SeedSuggestions(t *testing.T, pool *pgxpool.Pool, userID, runID uuid.UUID, n int) []domain.Suggestion {
	t.Helper()

	out := make([]domain.Suggestion, 0, n)
	base := time.Now().UTC().Truncate(time.Microsecond)
	for i := 0; i < n; i++ {
		s := domain.Suggestion{
			ID:        uuid.New(),
			UserID:    userID,
			RunID:     runID,
			Content:   "suggestion " + uuid.NewString()[:8],
			Status:    domain.SuggestionStatusActive,
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		}
		s.UpdatedAt = s.CreatedAt

		_, err := pool.Exec(context.Background(),
			`INSERT INTO suggestions (id, user_id, run_id, content, status, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, 'active', $5, $5)`,
			s.ID, s.UserID, s.RunID, s.Content, s.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedSuggestions: %v", err)
		}
		out = append(out, s)
	}
	return out
}

// SeedPosting records a posting event for userID. A nil postedAt seeds a draft.
func SeedPosting(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, postedAt *time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO posting_history (id, user_id, content, posted_at) VALUES ($1, $2, 'post', $3)`,
		id, userID, postedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPosting: %v", err)
	}
	return id
}
