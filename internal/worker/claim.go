package worker

import (
	"context"
	"fmt"
	"log/slog"
)

// ClaimLoop periodically claims pending runs that nobody started, for example
// because the dispatch call was lost or every slot was busy. It returns when
// ctx is cancelled.
func (r *Runner) ClaimLoop(ctx context.Context) {
	ticker := r.clock.NewTicker(r.cfg.ClaimInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if _, err := r.Claim(ctx); err != nil {
				r.log.ErrorContext(ctx, "claim pending runs", slog.String("error", err.Error()))
			}
		}
	}
}

// Claim moves as many orphaned pending runs to generating as there are free
// slots and starts them. It returns the number of runs started.
func (r *Runner) Claim(ctx context.Context) (int, error) {
	slots := 0
	for slots < r.cfg.ClaimBatch && r.sem.TryAcquire(1) {
		slots++
	}
	if slots == 0 {
		return 0, nil
	}

	now := r.clock.Now().UTC()
	runs, err := r.runs.ClaimPending(ctx, now.Add(-r.cfg.ClaimAfter), slots, now)
	if err != nil {
		r.sem.Release(int64(slots))
		return 0, fmt.Errorf("claim pending: %w", err)
	}
	if unused := slots - len(runs); unused > 0 {
		r.sem.Release(int64(unused))
	}

	for _, run := range runs {
		r.log.InfoContext(ctx, "claimed orphaned run", slog.String("run_id", run.ID.String()))
		r.launch(run)
	}
	return len(runs), nil
}
