package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
)

// Migrator applies the engine's embedded migrations to a database.
type Migrator struct {
	provider *goose.Provider
	logger   *slog.Logger
}

// NewMigrator prepares a migrator for db. It does not take ownership of db.
func NewMigrator(db *sql.DB, engine Engine, logger *slog.Logger) (*Migrator, error) {
	provider, err := goose.NewProvider(engine.GooseDialect, db, engine.Migrations)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize migrations: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Migrator{
		provider: provider,
		logger: logger.With(
			slog.String("component", "migrations"),
			slog.String("correlation_id", uuid.New().String()),
			slog.String("driver", engine.Name),
		),
	}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	start := time.Now()
	results, err := m.provider.Up(ctx)
	for _, r := range results {
		m.logResult(r)
	}
	if err != nil {
		m.logger.Error("migration up failed", slog.String("error", err.Error()))
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	m.logger.Info("migrations applied",
		slog.Int("count", len(results)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if err != nil {
		if errors.Is(err, goose.ErrNoNextVersion) {
			m.logger.Info("no migration to roll back")
			return nil
		}
		m.logger.Error("migration down failed", slog.String("error", err.Error()))
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	m.logResult(result)
	return nil
}

// Version returns the current schema version, 0 for an empty database.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// Status writes one line per known migration to w.
func (m *Migrator) Status(ctx context.Context, w io.Writer) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tSOURCE")
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.UTC().Format(time.RFC3339)
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	return tw.Flush()
}

func (m *Migrator) logResult(r *goose.MigrationResult) {
	if r == nil || r.Source == nil {
		return
	}
	m.logger.Info("migration executed",
		slog.Int64("version", r.Source.Version),
		slog.String("source", r.Source.Path),
		slog.String("direction", r.Direction),
		slog.Int64("duration_ms", r.Duration.Milliseconds()))
}
