package sqlite

import (
	"embed"
	"errors"
	"io/fs"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver name registered by go-sqlite3.
const DriverName = "sqlite3"

// connParams are appended to every DSN. SQLite leaves foreign keys off per
// connection unless asked.
var connParams = []string{"_foreign_keys=1", "_busy_timeout=5000"}

//go:embed migrations/*.sql
var embedded embed.FS

// Migrations returns the SQLite schema migrations rooted at the migrations
// directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(embedded, "migrations")
	if err != nil {
		// ALLOW-PANIC: the embedded directory is fixed at compile time
		panic(err)
	}
	return sub
}

// DSN adds the connection parameters the stores rely on to url, keeping any
// the caller already set.
func DSN(url string) string {
	var missing []string
	for _, p := range connParams {
		key := p[:strings.IndexByte(p, '=')+1]
		if !strings.Contains(url, key) {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return url
	}

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + strings.Join(missing, "&")
}

// Dialect classifies go-sqlite3 errors for the SQL stores.
type Dialect struct{}

// Name implements sqlstore.Dialect.
func (Dialect) Name() string { return "sqlite3" }

// IsUniqueViolation implements sqlstore.Dialect.
func (Dialect) IsUniqueViolation(err error) bool {
	return hasExtendedCode(err, sqlite3.ErrConstraintUnique) ||
		hasExtendedCode(err, sqlite3.ErrConstraintPrimaryKey)
}

// IsForeignKeyViolation implements sqlstore.Dialect.
func (Dialect) IsForeignKeyViolation(err error) bool {
	return hasExtendedCode(err, sqlite3.ErrConstraintForeignKey)
}

func hasExtendedCode(err error, code sqlite3.ErrNoExtended) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == code
}
