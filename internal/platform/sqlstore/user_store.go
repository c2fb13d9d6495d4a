package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

const (
	insertUserQuery = `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	selectUserByIDQuery = `
		SELECT id, name, email, password_hash
		FROM users
		WHERE id = $1
	`
	selectUserByEmailQuery = `
		SELECT id, name, email, password_hash
		FROM users
		WHERE email = $1
	`
)

// UserStore implements store.UserStore.
type UserStore struct {
	db      store.Connector
	dialect Dialect
	logger  *slog.Logger
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore. Each call acquires its own connection
// from db and releases it before returning.
func NewUserStore(db store.Connector, dialect Dialect, logger *slog.Logger) *UserStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "user_store")),
	}
}

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	err := store.WithConn(ctx, s.db, func(ctx context.Context, conn *sql.Conn) error {
		return store.RunInTransaction(ctx, conn, func(ctx context.Context, tx *sql.Tx) error {
			return tx.QueryRowContext(ctx, insertUserQuery, user.Name, user.Email, user.PasswordHash).
				Scan(&user.ID)
		})
	})
	if err != nil {
		if s.dialect.IsUniqueViolation(err) {
			log.Debug("user email already registered")
			return store.ErrEmailExists
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("dialect", s.dialect.Name()))
		return store.NewStoreError("user", "create", "failed to insert user", err)
	}

	log.Info("user created", slog.Int64("user_id", user.ID))
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getOne(ctx, "get_by_id", selectUserByIDQuery, id)
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, "get_by_email", selectUserByEmailQuery, email)
}

func (s *UserStore) getOne(ctx context.Context, op, query string, arg any) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var user domain.User
	err := store.WithConn(ctx, s.db, func(ctx context.Context, conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query, arg).
			Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("operation", op))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("operation", op),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", op, "failed to query user", err)
	}

	return &user, nil
}
