package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
)

// TokenService issues and validates signed identity tokens.
//
// Access and refresh tokens share one claim set and differ only in
// lifetime, so Validate accepts either.
type TokenService interface {
	// Issue creates a token for userID that expires after ttl.
	Issue(ctx context.Context, userID int64, ttl time.Duration) (string, error)

	// IssueAccessToken creates a token with the configured access lifetime.
	IssueAccessToken(ctx context.Context, userID int64) (string, error)

	// IssueRefreshToken creates a token with the configured refresh lifetime.
	IssueRefreshToken(ctx context.Context, userID int64) (string, error)

	// Validate checks the token and returns the user id it was issued for.
	// Any failure yields ErrInvalidToken.
	Validate(ctx context.Context, token string) (int64, error)
}

var signingMethods = map[string]*jwt.SigningMethodHMAC{
	jwt.SigningMethodHS256.Alg(): jwt.SigningMethodHS256,
	jwt.SigningMethodHS384.Alg(): jwt.SigningMethodHS384,
	jwt.SigningMethodHS512.Alg(): jwt.SigningMethodHS512,
}

// hmacTokenService is an implementation of TokenService using HMAC-SHA signing.
type hmacTokenService struct {
	signingKey           []byte
	method               *jwt.SigningMethodHMAC
	tokenLifetime        time.Duration
	refreshTokenLifetime time.Duration
	timeFunc             func() time.Time // Injectable for testing
}

// Ensure hmacTokenService implements TokenService interface
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService from the auth configuration.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	return newTokenService(cfg, time.Now)
}

func newTokenService(cfg config.AuthConfig, timeFunc func() time.Time) (*hmacTokenService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	alg := cfg.Algorithm
	if alg == "" {
		alg = jwt.SigningMethodHS256.Alg()
	}
	method, ok := signingMethods[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}

	return &hmacTokenService{
		signingKey:           []byte(cfg.JWTSecret),
		method:               method,
		tokenLifetime:        time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		refreshTokenLifetime: time.Duration(cfg.RefreshTokenLifetimeMinutes) * time.Minute,
		timeFunc:             timeFunc,
	}, nil
}

// IssueAccessToken implements TokenService.
func (s *hmacTokenService) IssueAccessToken(ctx context.Context, userID int64) (string, error) {
	return s.Issue(ctx, userID, s.tokenLifetime)
}

// IssueRefreshToken implements TokenService.
func (s *hmacTokenService) IssueRefreshToken(ctx context.Context, userID int64) (string, error) {
	return s.Issue(ctx, userID, s.refreshTokenLifetime)
}

// Issue implements TokenService.
func (s *hmacTokenService) Issue(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	now := s.timeFunc()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.New().String(),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.signingKey)
	if err != nil {
		logger.FromContext(ctx).Error("failed to sign token",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.String("signing_method", s.method.Alg()))
		return "", fmt.Errorf("failed to sign token with %s: %w", s.method.Alg(), err)
	}

	return signed, nil
}

// Validate implements TokenService.
func (s *hmacTokenService) Validate(ctx context.Context, tokenString string) (int64, error) {
	log := logger.FromContext(ctx)

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.timeFunc),
	)
	if err != nil {
		log.Debug("token validation failed",
			slog.String("reason", rejectionReason(err)),
			slog.String("error", err.Error()))
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		log.Debug("token validation failed", slog.String("reason", "invalid claims"))
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		log.Debug("token validation failed",
			slog.String("reason", "subject is not a user id"))
		return 0, ErrInvalidToken
	}

	return userID, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return "missing claim"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "invalid signature"
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return "unverifiable"
	default:
		return "invalid"
	}
}
