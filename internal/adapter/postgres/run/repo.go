// Package run implements the generation run repository using PostgreSQL.
package run

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

// Repo provides generation run persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new run repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const runColumns = `id, user_id, status, progress, requested, generated, post_types,
	error_message, created_at, started_at, completed_at, updated_at`

const createSQL = `
INSERT INTO generation_runs (id, user_id, status, progress, requested, generated, post_types, created_at, updated_at)
VALUES ($1, $2, 'pending', 0, $3, 0, $4, $5, $5)
RETURNING ` + runColumns

const getByIDSQL = `
SELECT ` + runColumns + `
FROM generation_runs
WHERE id = $1 AND user_id = $2`

const getSQL = `
SELECT ` + runColumns + `
FROM generation_runs
WHERE id = $1`

const getInFlightSQL = `
SELECT ` + runColumns + `
FROM generation_runs
WHERE user_id = $1 AND status IN ('pending', 'generating')`

const getLatestSQL = `
SELECT ` + runColumns + `
FROM generation_runs
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 1`

const cancelSQL = `
UPDATE generation_runs
SET status = 'cancelled', completed_at = $2, updated_at = $2
WHERE user_id = $1 AND status IN ('pending', 'generating')
RETURNING ` + runColumns

const startSQL = `
UPDATE generation_runs
SET status = 'generating', started_at = $2, updated_at = $2
WHERE id = $1 AND status = 'pending'
RETURNING ` + runColumns

const claimPendingSQL = `
UPDATE generation_runs
SET status = 'generating', started_at = $3, updated_at = $3
WHERE id IN (
    SELECT id FROM generation_runs
    WHERE status = 'pending' AND created_at < $1
    ORDER BY created_at
    LIMIT $2
    FOR UPDATE SKIP LOCKED
)
RETURNING ` + runColumns

const updateProgressSQL = `
UPDATE generation_runs
SET generated = $2, progress = $3, updated_at = $4
WHERE id = $1 AND status = 'generating'`

const completeSQL = `
UPDATE generation_runs
SET status = 'completed', generated = $2, progress = 100, post_types = $3, completed_at = $4, updated_at = $4
WHERE id = $1 AND status = 'generating'
RETURNING ` + runColumns

const failSQL = `
UPDATE generation_runs
SET status = 'failed', error_message = $2, completed_at = $3, updated_at = $3
WHERE id = $1 AND status IN ('pending', 'generating')
RETURNING ` + runColumns

const failStaleSQL = `
UPDATE generation_runs
SET status = 'failed', error_message = $2, completed_at = $3, updated_at = $3
WHERE status IN ('pending', 'generating') AND updated_at < $1
RETURNING ` + runColumns

// runRow is the scan target for generation_runs rows.
type runRow struct {
	ID           uuid.UUID  `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	Status       string     `db:"status"`
	Progress     int        `db:"progress"`
	Requested    int        `db:"requested"`
	Generated    int        `db:"generated"`
	PostTypes    []string   `db:"post_types"`
	ErrorMessage *string    `db:"error_message"`
	CreatedAt    time.Time  `db:"created_at"`
	StartedAt    *time.Time `db:"started_at"`
	CompletedAt  *time.Time `db:"completed_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r runRow) toDomain() *domain.GenerationRun {
	postTypes := r.PostTypes
	if postTypes == nil {
		postTypes = []string{}
	}
	return &domain.GenerationRun{
		ID:           r.ID,
		UserID:       r.UserID,
		Status:       domain.RunStatus(r.Status),
		Progress:     r.Progress,
		Requested:    r.Requested,
		Generated:    r.Generated,
		PostTypes:    postTypes,
		ErrorMessage: r.ErrorMessage,
		CreatedAt:    r.CreatedAt,
		StartedAt:    r.StartedAt,
		CompletedAt:  r.CompletedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toDomainRuns(rows []runRow) []*domain.GenerationRun {
	runs := make([]*domain.GenerationRun, len(rows))
	for i, row := range rows {
		runs[i] = row.toDomain()
	}
	return runs
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a run owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, runID uuid.UUID) (*domain.GenerationRun, error) {
	return r.getOne(ctx, runID, getByIDSQL, runID, userID)
}

// Get returns a run regardless of owner. Used by the worker.
func (r *Repo) Get(ctx context.Context, runID uuid.UUID) (*domain.GenerationRun, error) {
	return r.getOne(ctx, runID, getSQL, runID)
}

// GetInFlight returns the owner's pending or generating run.
// Returns domain.ErrNotFound if none exists.
func (r *Repo) GetInFlight(ctx context.Context, userID uuid.UUID) (*domain.GenerationRun, error) {
	return r.getOne(ctx, userID, getInFlightSQL, userID)
}

// GetLatest returns the owner's most recently created run.
// Returns domain.ErrNotFound if the owner has no runs.
func (r *Repo) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.GenerationRun, error) {
	return r.getOne(ctx, userID, getLatestSQL, userID)
}

// ListByUser returns the owner's runs, newest first, optionally filtered by status.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, statuses []domain.RunStatus, limit int) ([]*domain.GenerationRun, error) {
	query := postgres.Builder.
		Select(runColumns).
		From("generation_runs").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if len(statuses) > 0 {
		raw := make([]string, len(statuses))
		for i, s := range statuses {
			raw[i] = string(s)
		}
		query = query.Where(sq.Eq{"status": raw})
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("run.ListByUser: build query: %w", err)
	}

	var rows []runRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "runs of user", userID)
	}

	return toDomainRuns(rows), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new pending run. The partial unique index on in-flight runs
// makes a second concurrent insert for the same owner fail with
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, run *domain.GenerationRun) (*domain.GenerationRun, error) {
	postTypes := run.PostTypes
	if postTypes == nil {
		postTypes = []string{}
	}
	return r.getOne(ctx, run.ID, createSQL,
		run.ID,
		run.UserID,
		run.Requested,
		postTypes,
		run.CreatedAt.UTC().Truncate(time.Microsecond),
	)
}

// CancelInFlight transitions the owner's pending or generating run to cancelled.
// Returns domain.ErrNotFound if there is nothing to cancel.
func (r *Repo) CancelInFlight(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.GenerationRun, error) {
	return r.getOne(ctx, userID, cancelSQL, userID, now)
}

// Start moves a pending run to generating.
// Returns domain.ErrNotFound if the run is no longer pending.
func (r *Repo) Start(ctx context.Context, runID uuid.UUID, now time.Time) (*domain.GenerationRun, error) {
	return r.getOne(ctx, runID, startSQL, runID, now)
}

// ClaimPending moves up to limit pending runs created before olderThan to
// generating and returns them. Concurrent claimers never receive the same run.
func (r *Repo) ClaimPending(ctx context.Context, olderThan time.Time, limit int, now time.Time) ([]*domain.GenerationRun, error) {
	var rows []runRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, claimPendingSQL, olderThan, limit, now); err != nil {
		return nil, postgres.MapError(err, "pending runs", "claim")
	}
	return toDomainRuns(rows), nil
}

// UpdateProgress records generation progress on a generating run.
// Returns domain.ErrNotFound if the run left the generating state.
func (r *Repo) UpdateProgress(ctx context.Context, runID uuid.UUID, generated, progress int, now time.Time) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateProgressSQL, runID, generated, progress, now)
	if err != nil {
		return postgres.MapError(err, "run", runID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("run %s: %w", runID, domain.ErrNotFound)
	}
	return nil
}

// Complete marks a generating run completed.
// Returns domain.ErrNotFound if the run left the generating state.
func (r *Repo) Complete(ctx context.Context, runID uuid.UUID, generated int, postTypes []string, now time.Time) (*domain.GenerationRun, error) {
	if postTypes == nil {
		postTypes = []string{}
	}
	return r.getOne(ctx, runID, completeSQL, runID, generated, postTypes, now)
}

// Fail marks a non-terminal run failed with the given message.
// Returns domain.ErrNotFound if the run is already terminal.
func (r *Repo) Fail(ctx context.Context, runID uuid.UUID, message string, now time.Time) (*domain.GenerationRun, error) {
	return r.getOne(ctx, runID, failSQL, runID, message, now)
}

// FailStale fails every non-terminal run not updated since before.
func (r *Repo) FailStale(ctx context.Context, before time.Time, message string, now time.Time) ([]*domain.GenerationRun, error) {
	var rows []runRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, failStaleSQL, before, message, now); err != nil {
		return nil, postgres.MapError(err, "stale runs", before)
	}
	return toDomainRuns(rows), nil
}

func (r *Repo) getOne(ctx context.Context, ref any, sql string, args ...any) (*domain.GenerationRun, error) {
	var row runRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "run", ref)
	}
	return row.toDomain(), nil
}
