package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/store"
)

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AccountService registers users and exchanges credentials for tokens.
type AccountService interface {
	// Register validates the input, hashes the password and stores the user.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Authenticate checks the credentials and issues an access/refresh pair.
	Authenticate(ctx context.Context, email, password string) (*TokenPair, error)

	// Refresh validates token, confirms its user still exists and issues a
	// new access token.
	Refresh(ctx context.Context, token string) (string, error)
}

// AccountServiceImpl implements the AccountService interface
type AccountServiceImpl struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	tokens auth.TokenService
	logger *slog.Logger
}

var _ AccountService = (*AccountServiceImpl)(nil)

// NewAccountService creates a new AccountService
func NewAccountService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	logger *slog.Logger,
) *AccountServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountServiceImpl{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With(slog.String("component", "account_service")),
	}
}

// Register implements AccountService. Rules are checked in the order name,
// password, email.
func (s *AccountServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.ValidName(name) {
		return nil, domain.ErrInvalidName
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user, err := domain.NewUser(name, email, digest)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if !errors.Is(err, store.ErrEmailExists) {
			log.Error("failed to save user", slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	return user, nil
}

// Authenticate implements AccountService.
func (s *AccountServiceImpl) Authenticate(ctx context.Context, email, password string) (*TokenPair, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login rejected", slog.String("reason", "unknown email"))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		log.Debug("login rejected",
			slog.String("reason", "password mismatch"),
			slog.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	access, err := s.tokens.IssueAccessToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	log.Info("user logged in", slog.Int64("user_id", user.ID))
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh implements AccountService.
func (s *AccountServiceImpl) Refresh(ctx context.Context, token string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	userID, err := s.tokens.Validate(ctx, token)
	if err != nil {
		return "", err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("refresh rejected",
				slog.String("reason", "user no longer exists"),
				slog.Int64("user_id", userID))
		}
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}

	access, err := s.tokens.IssueAccessToken(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}

	log.Debug("access token refreshed", slog.Int64("user_id", userID))
	return access, nil
}
