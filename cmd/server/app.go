package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/database"
	"github.com/phrazzld/contacts-api/internal/platform/sqlstore"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB
	engine database.Engine

	// Stores
	userStore    store.UserStore
	contactStore store.ContactStore

	// Service interfaces
	tokenService   auth.TokenService
	passwordHasher auth.PasswordHasher
	accountService service.AccountService
	contactService service.ContactService
}

// newApplication wires stores and services over an open database. The
// application takes ownership of db and closes it in cleanup.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB, engine database.Engine) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		engine: engine,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("token service initialized",
		slog.String("algorithm", cfg.Auth.Algorithm),
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes),
		slog.Int("refresh_token_lifetime_minutes", cfg.Auth.RefreshTokenLifetimeMinutes))

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userStore = sqlstore.NewUserStore(db, engine.Dialect, logger)
	app.contactStore = sqlstore.NewContactStore(db, engine.Dialect, logger)

	app.accountService = service.NewAccountService(app.userStore, app.passwordHasher, app.tokenService, logger)
	app.contactService = service.NewContactService(app.contactStore, logger)

	logger.Info("application initialized", slog.String("driver", engine.Name))
	return app, nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}
