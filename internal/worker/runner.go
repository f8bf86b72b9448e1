// Package worker is the reference generation worker. It claims pending runs,
// writes suggestions one at a time and stops as soon as a run leaves the
// generating state.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/semaphore"

	"github.com/heartmarshall/postcraft-backend/internal/adapter/llm"
	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/pkg/ctxutil"
)

var (
	errCancelled = errors.New("run cancelled")
	errShutdown  = errors.New("worker shutting down")
)

type runRepo interface {
	Start(ctx context.Context, runID uuid.UUID, now time.Time) (*domain.GenerationRun, error)
	ClaimPending(ctx context.Context, olderThan time.Time, limit int, now time.Time) ([]*domain.GenerationRun, error)
	UpdateProgress(ctx context.Context, runID uuid.UUID, generated, progress int, now time.Time) error
	Complete(ctx context.Context, runID uuid.UUID, generated int, postTypes []string, now time.Time) (*domain.GenerationRun, error)
	Fail(ctx context.Context, runID uuid.UUID, message string, now time.Time) (*domain.GenerationRun, error)
}

type suggestionRepo interface {
	Create(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type completer interface {
	Complete(ctx context.Context, p llm.Prompt) (string, error)
}

// Config holds the runner limits.
type Config struct {
	Concurrency   int
	ClaimInterval time.Duration
	ClaimAfter    time.Duration
	ClaimBatch    int
	ItemTimeout   time.Duration
}

// StartResult tells the dispatcher what happened to a start request.
type StartResult string

const (
	StartStarted StartResult = "started"
	StartQueued  StartResult = "queued"
	StartRunning StartResult = "running"
)

// Runner executes generation runs with bounded concurrency.
type Runner struct {
	runs        runRepo
	suggestions suggestionRepo
	tx          txManager
	llm         completer
	clock       clockwork.Clock
	cfg         Config
	sem         *semaphore.Weighted
	log         *slog.Logger

	base context.Context
	stop context.CancelCauseFunc

	mu     sync.Mutex
	active map[uuid.UUID]context.CancelCauseFunc
	wg     sync.WaitGroup
}

// NewRunner creates a Runner.
func NewRunner(
	log *slog.Logger,
	runs runRepo,
	suggestions suggestionRepo,
	tx txManager,
	model completer,
	clock clockwork.Clock,
	cfg Config,
) *Runner {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.ClaimBatch <= 0 {
		cfg.ClaimBatch = cfg.Concurrency
	}
	if cfg.ItemTimeout <= 0 {
		cfg.ItemTimeout = time.Minute
	}
	base, stop := context.WithCancelCause(context.Background())
	return &Runner{
		runs:        runs,
		suggestions: suggestions,
		tx:          tx,
		llm:         model,
		clock:       clock,
		cfg:         cfg,
		sem:         semaphore.NewWeighted(int64(cfg.Concurrency)),
		log:         log.With("component", "worker"),
		base:        base,
		stop:        stop,
		active:      make(map[uuid.UUID]context.CancelCauseFunc),
	}
}

// Start begins processing runID in the background.
//
// When every slot is busy the run stays pending and StartQueued is returned;
// the claim loop picks it up later. A run that is no longer pending yields
// domain.ErrNotFound.
func (r *Runner) Start(ctx context.Context, runID uuid.UUID) (StartResult, error) {
	if r.isActive(runID) {
		return StartRunning, nil
	}
	if !r.sem.TryAcquire(1) {
		r.log.InfoContext(ctx, "all slots busy, run queued", slog.String("run_id", runID.String()))
		return StartQueued, nil
	}

	run, err := r.runs.Start(ctx, runID, r.clock.Now().UTC())
	if err != nil {
		r.sem.Release(1)
		return "", fmt.Errorf("start run %s: %w", runID, err)
	}

	r.launch(run)
	return StartStarted, nil
}

// Cancel interrupts the run if this worker is processing it. It reports
// whether the run was found.
func (r *Runner) Cancel(runID uuid.UUID) bool {
	r.mu.Lock()
	cancel, ok := r.active[runID]
	r.mu.Unlock()
	if ok {
		cancel(errCancelled)
	}
	return ok
}

// Active returns how many runs are being processed.
func (r *Runner) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// Shutdown waits for in-flight runs. When ctx expires first, the remaining
// runs are interrupted and marked failed.
func (r *Runner) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.stop(errShutdown)
		return nil
	case <-ctx.Done():
		r.stop(errShutdown)
		<-done
		return ctx.Err()
	}
}

func (r *Runner) isActive(runID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.active[runID]
	return ok
}

// launch runs Process in a goroutine. The caller must hold a semaphore slot.
func (r *Runner) launch(run *domain.GenerationRun) {
	ctx, cancel := context.WithCancelCause(withRunIdentity(r.base, run))

	r.mu.Lock()
	r.active[run.ID] = cancel
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.sem.Release(1)
		defer func() {
			r.mu.Lock()
			delete(r.active, run.ID)
			r.mu.Unlock()
			cancel(nil)
		}()

		if err := r.Process(ctx, run); err != nil {
			r.log.WarnContext(ctx, "run finished with error", slog.String("error", err.Error()))
		}
	}()
}

// withRunIdentity tags ctx so every log line of a run carries its run and owner.
func withRunIdentity(ctx context.Context, run *domain.GenerationRun) context.Context {
	return ctxutil.WithUserID(ctxutil.WithRunID(ctx, run.ID), run.UserID)
}
