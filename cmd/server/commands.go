package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/database"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/service/auth"
)

// Terminal seams, replaced in tests.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// runServe loads the configuration, prepares the database and serves the API
// until ctx is canceled.
func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver))

	db, engine, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := migrateUp(ctx, db, engine, log); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(cfg, log, db, engine)
	if err != nil {
		_ = db.Close()
		return err
	}

	return app.Run(ctx)
}

func migrateUp(ctx context.Context, db *sql.DB, engine database.Engine, log *slog.Logger) error {
	migrator, err := database.NewMigrator(db, engine, log)
	if err != nil {
		return err
	}
	return migrator.Up(ctx)
}

// withMigrator opens the configured database for the duration of fn. Logs go
// to stderr so that command output on stdout stays clean.
func withMigrator(ctx context.Context, cmd *cli.Command, fn func(*database.Migrator) error) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log := logger.New(cmd.Root().ErrWriter, cfg.Server)

	db, engine, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	migrator, err := database.NewMigrator(db, engine, log)
	if err != nil {
		return err
	}
	return fn(migrator)
}

func runMigrateUp(ctx context.Context, cmd *cli.Command) error {
	return withMigrator(ctx, cmd, func(m *database.Migrator) error {
		return m.Up(ctx)
	})
}

func runMigrateDown(ctx context.Context, cmd *cli.Command) error {
	return withMigrator(ctx, cmd, func(m *database.Migrator) error {
		return m.Down(ctx)
	})
}

func runMigrateStatus(ctx context.Context, cmd *cli.Command) error {
	return withMigrator(ctx, cmd, func(m *database.Migrator) error {
		return m.Status(ctx, cmd.Root().Writer)
	})
}

func runMigrateVersion(ctx context.Context, cmd *cli.Command) error {
	return withMigrator(ctx, cmd, func(m *database.Migrator) error {
		version, err := m.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.Root().Writer, version)
		return err
	})
}

// runHashPassword prints the bcrypt digest of a password read without echo
// from a terminal, or from the first line of stdin otherwise.
func runHashPassword(ctx context.Context, cmd *cli.Command) error {
	root := cmd.Root()

	password, err := promptPassword(root.Reader, root.ErrWriter)
	if err != nil {
		return err
	}
	if password == "" {
		return errors.New("password cannot be empty")
	}

	digest, err := auth.NewBcryptHasher(cmd.Int("cost")).Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = fmt.Fprintln(root.Writer, digest)
	return err
}

func promptPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(prompt, "Password: ")
		password, err := readPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(password), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// runToken prints an access token, or a refresh token with --refresh, signed
// with the configured secret.
func runToken(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return err
	}

	userID := cmd.Int64("user-id")
	if userID <= 0 {
		return errors.New("user-id must be positive")
	}

	var token string
	if cmd.Bool("refresh") {
		token, err = tokens.IssueRefreshToken(ctx, userID)
	} else {
		token, err = tokens.IssueAccessToken(ctx, userID)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, token)
	return err
}
