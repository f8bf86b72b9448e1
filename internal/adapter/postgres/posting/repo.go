// Package posting reads the owner's posting history.
package posting

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

// Repo provides read access to posting_history.
type Repo struct {
	db postgres.Querier
}

// New creates a new posting history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type eventRow struct {
	ID       uuid.UUID  `db:"id"`
	UserID   uuid.UUID  `db:"user_id"`
	PostedAt *time.Time `db:"posted_at"`
}

// ListEvents returns the owner's posting events. When since is non-zero only
// events posted at or after it are returned; unposted drafts are included
// only without a since bound.
func (r *Repo) ListEvents(ctx context.Context, userID uuid.UUID, since time.Time) ([]*domain.PostingEvent, error) {
	query := postgres.Builder.
		Select("id", "user_id", "posted_at").
		From("posting_history").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("posted_at DESC NULLS LAST")
	if !since.IsZero() {
		query = query.Where(sq.GtOrEq{"posted_at": since})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("posting.ListEvents: build query: %w", err)
	}

	var rows []eventRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "posting history of user", userID)
	}

	out := make([]*domain.PostingEvent, len(rows))
	for i, row := range rows {
		out[i] = &domain.PostingEvent{ID: row.ID, UserID: row.UserID, PostedAt: row.PostedAt}
	}
	return out, nil
}
