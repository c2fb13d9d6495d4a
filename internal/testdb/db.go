package testdb

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/database"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 10 * time.Second

// PostgresURLEnv names the variable holding the integration database URL.
const PostgresURLEnv = "CONTACTS_TEST_DATABASE_URL"

// DB is a migrated database together with the engine that opened it.
type DB struct {
	*sql.DB
	Engine database.Engine
}

// SQLite returns a freshly migrated SQLite database private to t. It is
// closed when the test finishes.
func SQLite(t *testing.T) DB {
	t.Helper()

	return open(t, config.DatabaseConfig{
		Driver:       "sqlite3",
		URL:          filepath.Join(t.TempDir(), "contacts.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 4,
	})
}

// Postgres returns a migrated PostgreSQL database with empty tables, or
// skips the test when PostgresURLEnv is unset.
func Postgres(t *testing.T) DB {
	t.Helper()

	url := os.Getenv(PostgresURLEnv)
	if url == "" {
		t.Skip(PostgresURLEnv + " not set - skipping integration test")
	}

	db := open(t, config.DatabaseConfig{
		Driver:                 "postgres",
		URL:                    url,
		MaxOpenConns:           10,
		MaxIdleConns:           5,
		ConnMaxLifetimeMinutes: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	_, err := db.ExecContext(ctx, "TRUNCATE contacts, users RESTART IDENTITY CASCADE")
	require.NoError(t, err, "failed to truncate tables")

	return db
}

func open(t *testing.T, cfg config.DatabaseConfig) DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	sqlDB, engine, err := database.Open(ctx, cfg, quiet)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	})

	migrator, err := database.NewMigrator(sqlDB, engine, quiet)
	require.NoError(t, err)
	require.NoError(t, migrator.Up(ctx), "failed to run migrations")

	return DB{DB: sqlDB, Engine: engine}
}

// InsertUser creates a user row directly and returns its id. The password
// hash is not a real bcrypt hash.
func InsertUser(t *testing.T, db *sql.DB, name, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id",
		name, email, "not-a-real-hash").Scan(&id)
	require.NoError(t, err, "failed to insert user")
	return id
}
