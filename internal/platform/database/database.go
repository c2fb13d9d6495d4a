// Package database opens the configured SQL engine and manages its schema.
//
// Both supported engines share the stores in sqlstore; an Engine bundles what
// differs between them: the database/sql driver, the DSN adjustments, the
// error dialect and the embedded migrations.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/postgres"
	"github.com/phrazzld/contacts-api/internal/platform/sqlite"
	"github.com/phrazzld/contacts-api/internal/platform/sqlstore"
	"github.com/pressly/goose/v3"
)

// pingTimeout bounds the connectivity check performed by Open.
const pingTimeout = 5 * time.Second

// Engine describes one supported database engine.
type Engine struct {
	Name         string
	DriverName   string
	Dialect      sqlstore.Dialect
	GooseDialect goose.Dialect
	Migrations   fs.FS
	dsn          func(string) string
}

// DSN returns url adjusted for the engine's driver.
func (e Engine) DSN(url string) string {
	if e.dsn == nil {
		return url
	}
	return e.dsn(url)
}

// Lookup returns the engine registered under driver, as named in
// config.DatabaseConfig.Driver.
func Lookup(driver string) (Engine, error) {
	switch driver {
	case "postgres":
		return Engine{
			Name:         "postgres",
			DriverName:   postgres.DriverName,
			Dialect:      postgres.Dialect{},
			GooseDialect: goose.DialectPostgres,
			Migrations:   postgres.Migrations(),
		}, nil
	case "sqlite3":
		return Engine{
			Name:         "sqlite3",
			DriverName:   sqlite.DriverName,
			Dialect:      sqlite.Dialect{},
			GooseDialect: goose.DialectSQLite3,
			Migrations:   sqlite.Migrations(),
			dsn:          sqlite.DSN,
		}, nil
	default:
		return Engine{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open establishes a connection pool for cfg and verifies it with a ping.
// The caller owns the returned *sql.DB.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, Engine, error) {
	engine, err := Lookup(cfg.Driver)
	if err != nil {
		return nil, Engine{}, err
	}

	db, err := sql.Open(engine.DriverName, engine.DSN(cfg.URL))
	if err != nil {
		return nil, Engine{}, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, Engine{}, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		slog.String("driver", engine.Name),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns))
	return db, engine, nil
}
