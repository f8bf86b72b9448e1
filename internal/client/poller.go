package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// DefaultPollInterval is the delay between status queries.
const DefaultPollInterval = 2000 * time.Millisecond

// GenericFailureMessage is reported when a failed run carries no message.
const GenericFailureMessage = "Generation failed. Please try again."

var (
	ErrPollerClosed = errors.New("poller closed")
	ErrRunFinished  = errors.New("run already finished")
)

// PollState is the state of the poller's current run.
type PollState string

const (
	PollIdle      PollState = "idle"
	PollPolling   PollState = "polling"
	PollCompleted PollState = "completed"
	PollFailed    PollState = "failed"
	PollCancelled PollState = "cancelled"
)

type statusSource interface {
	GetStatus(ctx context.Context, runID *uuid.UUID) (*domain.GenerationRun, error)
	GetActiveRun(ctx context.Context) (*domain.GenerationRun, error)
}

// PollerHooks are invoked from the polling goroutine. Any of them may be nil.
// A hook may call Start or Stop; it must not call Close.
type PollerHooks struct {
	OnProgress  func(ctx context.Context, run *domain.GenerationRun)
	OnCompleted func(ctx context.Context, run *domain.GenerationRun)
	OnFailed    func(ctx context.Context, run *domain.GenerationRun, message string)
	OnCancelled func(ctx context.Context, run *domain.GenerationRun)
	// OnError reports a status query error that retrying will not fix, such
	// as an expired session or an unknown run. Polling continues.
	OnError func(ctx context.Context, runID uuid.UUID, err error)
}

// Poller observes one generation run at a time until it reaches a terminal
// status. Query errors never stop it; only a terminal status, Stop or Close do.
// A run that finished or was stopped is never polled again.
type Poller struct {
	src      statusSource
	clock    clockwork.Clock
	interval time.Duration
	hooks    PollerHooks
	log      *slog.Logger

	mu       sync.Mutex
	current  *pollHandle
	state    PollState
	finished map[uuid.UUID]PollState
	closed   bool
	wg       sync.WaitGroup
}

type pollHandle struct {
	runID  uuid.UUID
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	inHook atomic.Bool
}

// live reports whether the handle's loop is still meant to run.
func (h *pollHandle) live() bool {
	return h != nil && h.ctx.Err() == nil
}

// release cancels the handle and waits for its loop to exit, unless the
// caller is the loop itself running a hook.
func (h *pollHandle) release() {
	h.cancel()
	if h.inHook.Load() {
		return
	}
	<-h.done
}

// NewPoller creates an idle Poller.
func NewPoller(src statusSource, clock clockwork.Clock, hooks PollerHooks, logger *slog.Logger) *Poller {
	return &Poller{
		src:      src,
		clock:    clock,
		interval: DefaultPollInterval,
		hooks:    hooks,
		log:      logger.With("client", "poller"),
		state:    PollIdle,
		finished: make(map[uuid.UUID]PollState),
	}
}

// Start begins polling runID. Starting the run that is already being polled
// is a no-op; starting another run replaces the current one.
func (p *Poller) Start(ctx context.Context, runID uuid.UUID) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPollerClosed
	}
	if st, ok := p.finished[runID]; ok {
		p.mu.Unlock()
		return fmt.Errorf("%w: %s is %s", ErrRunFinished, runID, st)
	}
	if p.current.live() && p.current.runID == runID {
		p.mu.Unlock()
		return nil
	}
	prev := p.current

	pctx, cancel := context.WithCancel(ctx)
	h := &pollHandle{runID: runID, ctx: pctx, cancel: cancel, done: make(chan struct{})}
	p.current = h
	p.state = PollPolling
	p.wg.Add(1)
	p.mu.Unlock()

	if prev != nil {
		prev.release()
	}

	p.log.DebugContext(ctx, "polling started", slog.String("run_id", runID.String()))
	go p.loop(pctx, h)
	return nil
}

// Resume attaches to the owner's non-terminal run, if any, and returns it.
func (p *Poller) Resume(ctx context.Context) (*domain.GenerationRun, error) {
	run, err := p.src.GetActiveRun(ctx)
	if err != nil {
		return nil, fmt.Errorf("resume: %w", err)
	}
	if run == nil {
		return nil, nil
	}
	if err := p.Start(ctx, run.ID); err != nil {
		return nil, fmt.Errorf("resume: %w", err)
	}
	return run, nil
}

// Stop ends polling of the current run after an owner-initiated cancel. The
// run is remembered as cancelled and will not be polled again. Called from a
// hook, Stop returns without waiting for that hook to finish.
func (p *Poller) Stop() {
	p.mu.Lock()
	h := p.current
	if h != nil {
		p.finished[h.runID] = PollCancelled
		p.current = nil
		p.state = PollCancelled
	}
	p.mu.Unlock()

	if h != nil {
		h.release()
	}
}

// Close tears down any running timer and waits for in-flight hooks. The
// poller cannot be restarted.
func (p *Poller) Close() {
	p.mu.Lock()
	p.closed = true
	h := p.current
	p.current = nil
	p.mu.Unlock()

	if h != nil {
		h.cancel()
	}
	p.wg.Wait()
}

// Wait blocks until the current run stops being polled and returns the
// resulting state. It returns immediately when nothing is polled.
func (p *Poller) Wait(ctx context.Context) (PollState, error) {
	p.mu.Lock()
	h := p.current
	p.mu.Unlock()

	if h != nil {
		select {
		case <-h.done:
		case <-ctx.Done():
			return p.State(), ctx.Err()
		}
	}
	return p.State(), nil
}

// State returns the state of the most recent run.
func (p *Poller) State() PollState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// RunID returns the run being polled, or uuid.Nil.
func (p *Poller) RunID() uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.current.live() {
		return uuid.Nil
	}
	return p.current.runID
}

func (p *Poller) loop(ctx context.Context, h *pollHandle) {
	defer p.wg.Done()
	defer close(h.done)
	defer p.detach(h)

	if p.poll(ctx, h) {
		return
	}

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if p.poll(ctx, h) {
				return
			}
		}
	}
}

// poll issues one status query and reports whether polling should end.
func (p *Poller) poll(ctx context.Context, h *pollHandle) bool {
	runID := h.runID
	run, err := p.src.GetStatus(ctx, &runID)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		p.log.WarnContext(ctx, "status query failed, retrying",
			slog.String("run_id", runID.String()),
			slog.String("error", err.Error()),
		)
		if p.hooks.OnError != nil && !errors.Is(err, domain.ErrTransientIO) {
			p.runHook(h, func() { p.hooks.OnError(ctx, runID, err) })
		}
		return false
	}
	if run == nil {
		return false
	}

	var next PollState
	switch run.Status {
	case domain.RunStatusCompleted:
		next = PollCompleted
	case domain.RunStatusFailed:
		next = PollFailed
	case domain.RunStatusCancelled:
		next = PollCancelled
	default:
		if p.hooks.OnProgress != nil {
			p.runHook(h, func() { p.hooks.OnProgress(ctx, run) })
		}
		return false
	}

	if !p.finish(h, next) {
		return true
	}
	p.log.DebugContext(ctx, "polling finished",
		slog.String("run_id", runID.String()),
		slog.String("status", run.Status.String()),
	)

	switch next {
	case PollCompleted:
		if p.hooks.OnCompleted != nil {
			p.runHook(h, func() { p.hooks.OnCompleted(ctx, run) })
		}
	case PollFailed:
		msg := GenericFailureMessage
		if run.ErrorMessage != nil && *run.ErrorMessage != "" {
			msg = *run.ErrorMessage
		}
		if p.hooks.OnFailed != nil {
			p.runHook(h, func() { p.hooks.OnFailed(ctx, run, msg) })
		}
	case PollCancelled:
		if p.hooks.OnCancelled != nil {
			p.runHook(h, func() { p.hooks.OnCancelled(ctx, run) })
		}
	}
	return true
}

// finish records the terminal state if h is still the current handle.
func (p *Poller) finish(h *pollHandle, st PollState) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finished[h.runID] = st
	if p.current != h {
		return false
	}
	p.current = nil
	p.state = st
	return true
}

// detach drops h when its loop exits without a terminal status, e.g. because
// the Start context was cancelled. The run is not recorded as finished, so it
// can be started again.
func (p *Poller) detach(h *pollHandle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != h {
		return
	}
	p.current = nil
	p.state = PollIdle
}

func (p *Poller) runHook(h *pollHandle, fn func()) {
	h.inHook.Store(true)
	defer h.inHook.Store(false)
	fn()
}
