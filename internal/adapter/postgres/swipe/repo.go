// Package swipe implements the append-only swipe record repository.
package swipe

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

// Repo provides swipe record persistence backed by PostgreSQL.
// Records are never updated or deleted.
type Repo struct {
	db postgres.Querier
}

// New creates a new swipe repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const swipeColumns = `id, user_id, post_id, suggestion_id, suggestion_content, action, created_at`

const createSQL = `
INSERT INTO swipe_records (id, user_id, post_id, suggestion_id, suggestion_content, action, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + swipeColumns

type swipeRow struct {
	ID                uuid.UUID  `db:"id"`
	UserID            uuid.UUID  `db:"user_id"`
	PostID            *uuid.UUID `db:"post_id"`
	SuggestionID      *uuid.UUID `db:"suggestion_id"`
	SuggestionContent *string    `db:"suggestion_content"`
	Action            string     `db:"action"`
	CreatedAt         time.Time  `db:"created_at"`
}

func (r swipeRow) toDomain() *domain.SwipeRecord {
	return &domain.SwipeRecord{
		ID:              r.ID,
		UserID:          r.UserID,
		PostID:          r.PostID,
		SuggestionID:    r.SuggestionID,
		ContentSnapshot: r.SuggestionContent,
		Action:          domain.SwipeAction(r.Action),
		CreatedAt:       r.CreatedAt,
	}
}

// Create appends a swipe record.
func (r *Repo) Create(ctx context.Context, rec *domain.SwipeRecord) (*domain.SwipeRecord, error) {
	var row swipeRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL,
		rec.ID,
		rec.UserID,
		rec.PostID,
		rec.SuggestionID,
		rec.ContentSnapshot,
		string(rec.Action),
		rec.CreatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return nil, postgres.MapError(err, "swipe", rec.ID)
	}
	return row.toDomain(), nil
}

// ListRecent returns the owner's most recent swipes, newest first.
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.SwipeRecord, error) {
	query := postgres.Builder.
		Select(swipeColumns).
		From("swipe_records").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("swipe.ListRecent: build query: %w", err)
	}

	var rows []swipeRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "swipes of user", userID)
	}

	out := make([]*domain.SwipeRecord, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// SwipedSuggestionIDs returns the subset of suggestionIDs the owner has swiped.
func (r *Repo) SwipedSuggestionIDs(ctx context.Context, userID uuid.UUID, suggestionIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(suggestionIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	sql, args, err := postgres.Builder.
		Select("DISTINCT suggestion_id").
		From("swipe_records").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"suggestion_id": suggestionIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("swipe.SwipedSuggestionIDs: build query: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, sql, args...); err != nil {
		return nil, postgres.MapError(err, "swipes of user", userID)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}
