package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
)

// MigrateDirection selects what Migrate does.
type MigrateDirection string

const (
	MigrateUp     MigrateDirection = "up"
	MigrateDown   MigrateDirection = "down"
	MigrateStatus MigrateDirection = "status"
)

// Migrate applies the goose migrations in migrations to the database at dsn.
// goose.NewProvider handles $$-delimited bodies that the legacy goose.Up splits.
func Migrate(ctx context.Context, log *slog.Logger, dsn string, migrations fs.FS, dir MigrateDirection) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	switch dir {
	case MigrateUp:
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		for _, r := range results {
			log.InfoContext(ctx, "migration applied",
				slog.Int64("version", r.Source.Version),
				slog.Duration("duration", r.Duration),
			)
		}
	case MigrateDown:
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		log.InfoContext(ctx, "migration rolled back", slog.Int64("version", r.Source.Version))
	case MigrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, st := range statuses {
			log.InfoContext(ctx, "migration status",
				slog.Int64("version", st.Source.Version),
				slog.String("state", string(st.State)),
			)
		}
	default:
		return fmt.Errorf("unknown migrate direction %q", dir)
	}

	return nil
}
