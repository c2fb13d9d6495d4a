// Package sqlstore implements the store contracts over database/sql.
//
// Queries are written once with $N placeholders, numbered in order of
// appearance and never reused, which both pgx and go-sqlite3 accept. Anything
// engine specific, such as recognizing constraint violations, is delegated
// to a Dialect.
package sqlstore

import (
	"database/sql"
	"fmt"
)

// Dialect classifies driver errors for one database engine.
type Dialect interface {
	// Name identifies the engine in logs.
	Name() string
	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
	// IsForeignKeyViolation reports whether err is a foreign key violation.
	IsForeignKeyViolation(err error) bool
}

// checkRowsAffected maps a statement that touched no rows to notFound.
func checkRowsAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
