package mocks

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/contacts-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing. By default it
// issues tokens of the form "token-<userID>" and validates them back.
type MockTokenService struct {
	IssueFn             func(ctx context.Context, userID int64, ttl time.Duration) (string, error)
	IssueAccessTokenFn  func(ctx context.Context, userID int64) (string, error)
	IssueRefreshTokenFn func(ctx context.Context, userID int64) (string, error)
	ValidateFn          func(ctx context.Context, token string) (int64, error)
}

var _ auth.TokenService = (*MockTokenService)(nil)

// Issue implements the TokenService interface
func (m *MockTokenService) Issue(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, userID, ttl)
	}
	return "token-" + strconv.FormatInt(userID, 10), nil
}

// IssueAccessToken implements the TokenService interface
func (m *MockTokenService) IssueAccessToken(ctx context.Context, userID int64) (string, error) {
	if m.IssueAccessTokenFn != nil {
		return m.IssueAccessTokenFn(ctx, userID)
	}
	return "token-" + strconv.FormatInt(userID, 10), nil
}

// IssueRefreshToken implements the TokenService interface
func (m *MockTokenService) IssueRefreshToken(ctx context.Context, userID int64) (string, error) {
	if m.IssueRefreshTokenFn != nil {
		return m.IssueRefreshTokenFn(ctx, userID)
	}
	return "refresh-token-" + strconv.FormatInt(userID, 10), nil
}

// Validate implements the TokenService interface
func (m *MockTokenService) Validate(ctx context.Context, token string) (int64, error) {
	if m.ValidateFn != nil {
		return m.ValidateFn(ctx, token)
	}

	idPart, ok := strings.CutPrefix(strings.TrimPrefix(token, "refresh-"), "token-")
	if !ok {
		return 0, auth.ErrInvalidToken
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, auth.ErrInvalidToken
	}
	return id, nil
}
