package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation reports whether err is a PostgreSQL unique-key violation.
// Uniqueness (usernames, flight numbers) is enforced by the storage layer,
// not by read-then-write checks, so concurrent duplicates surface here.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
