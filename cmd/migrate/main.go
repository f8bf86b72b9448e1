// Command migrate applies the embedded goose migrations.
//
// Usage: migrate [up|down|status] (default up).
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/postcraft-backend/internal/adapter/postgres"
	"github.com/heartmarshall/postcraft-backend/internal/app"
	"github.com/heartmarshall/postcraft-backend/internal/config"
	"github.com/heartmarshall/postcraft-backend/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	dir := postgres.MigrateUp
	if len(os.Args) > 1 {
		dir = postgres.MigrateDirection(os.Args[1])
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := postgres.Migrate(ctx, logger, cfg.Database.DSN, migrations.FS, dir); err != nil {
		logger.Error("migrate", slog.String("direction", string(dir)), slog.String("error", err.Error()))
		os.Exit(1)
	}
}
