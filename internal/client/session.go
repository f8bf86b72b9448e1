package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

type sessionAPI interface {
	statusSource
	suggestionSource
	swipeStore
	RequestGeneration(ctx context.Context) (*GenerationAccepted, error)
	CancelGeneration(ctx context.Context) error
}

// Session wires the poller, the lifecycle projection and the recorder for
// one signed-in owner.
type Session struct {
	api       sessionAPI
	poller    *Poller
	lifecycle *Lifecycle
	recorder  *Recorder
	notifier  Notifier
	log       *slog.Logger

	genMu sync.Mutex

	errMu       sync.Mutex
	reportedRun uuid.UUID
}

// NewSession creates a Session. Call Bootstrap before use and Close when done.
func NewSession(api sessionAPI, clock clockwork.Clock, notifier Notifier, logger *slog.Logger) *Session {
	s := &Session{
		api:      api,
		notifier: notifier,
		log:      logger.With("client", "session"),
	}
	s.lifecycle = NewLifecycle(api, notifier, logger)
	s.recorder = NewRecorder(api, logger)
	s.poller = NewPoller(api, clock, PollerHooks{
		OnProgress:  s.onProgress,
		OnCompleted: s.onCompleted,
		OnFailed:    s.onFailed,
		OnError:     s.onError,
	}, logger)
	return s
}

func (s *Session) Poller() *Poller       { return s.poller }
func (s *Session) Lifecycle() *Lifecycle { return s.lifecycle }
func (s *Session) Recorder() *Recorder   { return s.recorder }

// Bootstrap loads the active set and swipe history, then resumes polling of
// an in-flight run if there is one. ctx bounds the resumed polling.
func (s *Session) Bootstrap(ctx context.Context) (*domain.GenerationRun, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.lifecycle.Refresh(gctx)
	})
	g.Go(func() error {
		return s.recorder.FetchHistory(gctx, DefaultHistoryLimit)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	run, err := s.poller.Resume(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	if run != nil {
		s.log.InfoContext(ctx, "resumed generation", slog.String("run_id", run.ID.String()))
	}
	return run, nil
}

// Generate requests a new run and starts polling it. While a run is being
// polled no request is sent; a conflict attaches the poller to the run the
// server reports. ctx bounds the polling.
func (s *Session) Generate(ctx context.Context) (uuid.UUID, error) {
	s.genMu.Lock()
	defer s.genMu.Unlock()

	if id := s.poller.RunID(); id != uuid.Nil {
		return id, nil
	}

	res, err := s.api.RequestGeneration(ctx)
	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &conflict) && conflict.RunID != uuid.Nil:
		s.log.InfoContext(ctx, "attaching to in-flight run", slog.String("run_id", conflict.RunID.String()))
		if err := s.poller.Start(ctx, conflict.RunID); err != nil {
			return uuid.Nil, fmt.Errorf("generate: %w", err)
		}
		return conflict.RunID, nil
	case err != nil:
		return uuid.Nil, fmt.Errorf("generate: %w", err)
	}

	if err := s.poller.Start(ctx, res.RunID); err != nil {
		return uuid.Nil, fmt.Errorf("generate: %w", err)
	}
	s.refresh(ctx)
	return res.RunID, nil
}

// Cancel cancels the in-flight run and stops polling it.
func (s *Session) Cancel(ctx context.Context) error {
	err := s.api.CancelGeneration(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	s.poller.Stop()
	s.refresh(ctx)
	return err
}

// Close stops polling.
func (s *Session) Close() {
	s.poller.Close()
}

func (s *Session) onProgress(_ context.Context, run *domain.GenerationRun) {
	if pn, ok := s.notifier.(ProgressNotifier); ok {
		pn.Progress(run)
	}
}

func (s *Session) onCompleted(ctx context.Context, run *domain.GenerationRun) {
	s.refresh(ctx)
	s.notifier.Success(fmt.Sprintf("Generated %d new suggestions", run.Generated))
}

func (s *Session) onFailed(ctx context.Context, _ *domain.GenerationRun, message string) {
	s.refresh(ctx)
	s.notifier.Error(message)
}

// onError tells the owner once per run that its status cannot be read.
func (s *Session) onError(ctx context.Context, runID uuid.UUID, err error) {
	s.errMu.Lock()
	seen := s.reportedRun == runID
	s.reportedRun = runID
	s.errMu.Unlock()
	if seen {
		return
	}
	s.log.WarnContext(ctx, "generation status unavailable",
		slog.String("run_id", runID.String()),
		slog.String("error", err.Error()),
	)
	s.notifier.Error(fmt.Sprintf("Could not check generation status: %v", err))
}

func (s *Session) refresh(ctx context.Context) {
	if err := s.lifecycle.Refresh(ctx); err != nil {
		s.log.WarnContext(ctx, "refresh suggestions failed", slog.String("error", err.Error()))
	}
}
