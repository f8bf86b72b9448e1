package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. ref identifies the
// entity in the message (usually an id). Context errors pass through unmapped.
func MapError(err error, entity string, ref any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, ref, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s %v: %w", entity, ref, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %v: %w", entity, ref, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %v: %w", entity, ref, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %v: %w", entity, ref, domain.ErrValidation)
		}
		if isTransientCode(pgErr.Code) {
			return fmt.Errorf("%s %v: %w: %s", entity, ref, domain.ErrTransientIO, pgErr.Message)
		}
		return fmt.Errorf("%s %v: %w", entity, ref, err)
	}

	if isConnError(err) {
		return fmt.Errorf("%s %v: %w: %v", entity, ref, domain.ErrTransientIO, err)
	}

	return fmt.Errorf("%s %v: %w", entity, ref, err)
}

// isTransientCode matches connection exceptions (class 08), operator
// intervention (57P0x), too_many_connections and serialization failures.
func isTransientCode(code string) bool {
	if len(code) == 5 && code[:2] == "08" {
		return true
	}
	switch code {
	case "57P01", "57P02", "57P03", "53300", "40001", "40P01":
		return true
	}
	return false
}

func isConnError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return pgconn.SafeToRetry(err)
}
