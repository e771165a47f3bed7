package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/yaredtsegaye/blog-platform/internal/middlewares"
)

// ErrUniqueViolation is returned when an insert or update breaks a unique index.
var ErrUniqueViolation = errors.New("unique constraint violation")

const pgUniqueViolationCode = "23505"

// executor returns the request-scoped transaction when one is present in the
// context, otherwise the base connection pool.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// isUniqueViolation reports whether err is a Postgres unique-index violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

// oneline collapses a SQL query to a single line for logging.
func oneline(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
