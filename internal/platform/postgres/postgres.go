package postgres

import (
	"embed"
	"io/fs"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DriverName is the database/sql driver name registered by pgx.
const DriverName = "pgx"

//go:embed migrations/*.sql
var embedded embed.FS

// Migrations returns the PostgreSQL schema migrations rooted at the
// migrations directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(embedded, "migrations")
	if err != nil {
		// ALLOW-PANIC: the embedded directory is fixed at compile time
		panic(err)
	}
	return sub
}

// Dialect classifies pgx errors for the SQL stores.
type Dialect struct{}

// Name implements sqlstore.Dialect.
func (Dialect) Name() string { return "postgres" }

// IsUniqueViolation implements sqlstore.Dialect.
func (Dialect) IsUniqueViolation(err error) bool { return IsUniqueViolation(err) }

// IsForeignKeyViolation implements sqlstore.Dialect.
func (Dialect) IsForeignKeyViolation(err error) bool { return IsForeignKeyViolation(err) }
