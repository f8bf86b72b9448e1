// Command reaper fails generation runs that stayed pending or generating
// longer than generation.stale_after, so pollers observe a terminal status.
// It never starts or restarts a run. It is intended to be invoked by an
// external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/postcraft-backend/internal/adapter/postgres"
	"github.com/heartmarshall/postcraft-backend/internal/adapter/postgres/run"
	"github.com/heartmarshall/postcraft-backend/internal/app"
	"github.com/heartmarshall/postcraft-backend/internal/config"
)

const staleMessage = "generation timed out"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	runRepo := run.New(pool)

	now := time.Now().UTC()
	threshold := now.Add(-cfg.Generation.StaleAfter)

	failed, err := runRepo.FailStale(ctx, threshold, staleMessage, now)
	if err != nil {
		logger.Error("fail stale runs",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	for _, r := range failed {
		logger.Warn("stale run failed",
			slog.String("run_id", r.ID.String()),
			slog.String("user_id", r.UserID.String()),
			slog.Int("generated", r.Generated),
			slog.Int("requested", r.Requested),
		)
	}

	logger.Info("stale run sweep completed",
		slog.Int("failed", len(failed)),
		slog.Time("threshold", threshold),
	)
}
