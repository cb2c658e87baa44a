package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carebridge/carebridge-api/internal/domain/repository"
)

// Re-exported so infrastructure callers don't need both packages.
var (
	ErrNotFound = repository.ErrNotFound
	ErrConflict = repository.ErrConflict
)

const uniqueViolation = "23505"

// mapError normalizes pgx errors into the sentinel errors the domain
// layer branches on.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrConflict
	}
	return err
}
