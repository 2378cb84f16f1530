package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrSchemaMissing is returned when a backup table does not exist.
// Run EnsureSchema (or the app's migrations) first.
var ErrSchemaMissing = errors.New("backup schema not initialized")

// IsPgUndefinedTableError checks if error is an undefined_table error
func IsPgUndefinedTableError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 42P01 = undefined_table
		return pgErr.Code == "42P01"
	}
	return false
}

// QueryError wraps a query failure with the operation name
func QueryError(op string, err error) error {
	if IsPgUndefinedTableError(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrSchemaMissing, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
