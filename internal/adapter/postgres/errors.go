package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// table and (optional) record id they concern.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, table, id string) error {
	if err == nil {
		return nil
	}

	subject := table
	if id != "" {
		subject = table + " " + id
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", subject, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42P01", "42703": // undefined_table, undefined_column
			return fmt.Errorf("%s: %w: %s", subject, domain.ErrSchemaMissing, pgErr.Message)
		case "42501": // insufficient_privilege
			return fmt.Errorf("%s: %w", subject, domain.ErrForbidden)
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", subject, domain.ErrAlreadyExists)
		case "23514", "22P02", "23502": // check_violation, invalid_text_representation, not_null_violation
			return fmt.Errorf("%s: %w: %s", subject, domain.ErrValidation, pgErr.Message)
		}
		return fmt.Errorf("%s: %w: %w", subject, domain.ErrRemote, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.SafeToRetry(err) {
		return fmt.Errorf("%s: %w: %w", subject, domain.ErrRemote, err)
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s: %w", subject, err)
}
