// Package suggestion implements the suggestion repository using PostgreSQL.
package suggestion

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/postcraft-backend/internal/adapter/postgres"
	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// Repo provides suggestion persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new suggestion repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const suggestionColumns = `id, user_id, run_id, content, status, post_type, created_at, updated_at`

const createSQL = `
INSERT INTO suggestions (id, user_id, run_id, content, status, post_type, created_at, updated_at)
VALUES ($1, $2, $3, $4, 'active', $5, $6, $6)
RETURNING ` + suggestionColumns

const getByIDSQL = `
SELECT ` + suggestionColumns + `
FROM suggestions
WHERE id = $1 AND user_id = $2`

const countActiveSQL = `
SELECT count(*) FROM suggestions WHERE user_id = $1 AND status = 'active'`

const transitionSQL = `
UPDATE suggestions
SET status = $3, updated_at = $4
WHERE id = $1 AND user_id = $2 AND status = 'active'
RETURNING ` + suggestionColumns

type suggestionRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	RunID     uuid.UUID `db:"run_id"`
	Content   string    `db:"content"`
	Status    string    `db:"status"`
	PostType  *string   `db:"post_type"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r suggestionRow) toDomain() *domain.Suggestion {
	return &domain.Suggestion{
		ID:        r.ID,
		UserID:    r.UserID,
		RunID:     r.RunID,
		Content:   r.Content,
		Status:    domain.SuggestionStatus(r.Status),
		PostType:  r.PostType,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// List returns the owner's suggestions newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.SuggestionFilter) ([]*domain.Suggestion, error) {
	query := postgres.Builder.
		Select(suggestionColumns).
		From("suggestions").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id")

	if f.Status != "" {
		query = query.Where(sq.Eq{"status": string(f.Status)})
	}
	if f.RunID != uuid.Nil {
		query = query.Where(sq.Eq{"run_id": f.RunID})
	}
	if f.Limit > 0 {
		query = query.Limit(uint64(f.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("suggestion.List: build query: %w", err)
	}

	var rows []suggestionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "suggestions of user", userID)
	}

	out := make([]*domain.Suggestion, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// GetByID returns a suggestion owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Suggestion, error) {
	var row suggestionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, id, userID); err != nil {
		return nil, postgres.MapError(err, "suggestion", id)
	}
	return row.toDomain(), nil
}

// CountActive returns how many active suggestions the owner holds.
func (r *Repo) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countActiveSQL, userID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "active suggestions of user", userID)
	}
	return n, nil
}

// Create inserts an active suggestion belonging to a run.
func (r *Repo) Create(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error) {
	var row suggestionRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL,
		s.ID,
		s.UserID,
		s.RunID,
		s.Content,
		s.PostType,
		s.CreatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", s.ID)
	}
	return row.toDomain(), nil
}

// TransitionFromActive moves an active suggestion to status.
// Returns domain.ErrNotFound if the suggestion is missing or no longer active.
func (r *Repo) TransitionFromActive(ctx context.Context, userID, id uuid.UUID, status domain.SuggestionStatus, now time.Time) (*domain.Suggestion, error) {
	var row suggestionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, transitionSQL, id, userID, string(status), now); err != nil {
		return nil, postgres.MapError(err, "suggestion", id)
	}
	return row.toDomain(), nil
}
