package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/service/auth"
)

// Messages written by Authenticate.
const (
	MsgMissingToken = "Token de acesso não informado."
	MsgInvalidToken = "Token inválido ou expirado."
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	tokens auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// Authenticate validates the bearer token from the Authorization header and
// adds the user ID to the request context. Requests without a valid token
// are rejected with 403 before reaching next.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := BearerToken(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusForbidden, MsgMissingToken)
			return
		}

		userID, err := m.tokens.Validate(r.Context(), token)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgInvalidToken, err,
				shared.WithElevatedLogLevel())
			return
		}

		ctx := shared.WithUserID(r.Context(), userID)
		log := logger.FromContext(ctx).With(slog.Int64("user_id", userID))
		ctx = logger.WithLogger(ctx, log)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively. A missing or malformed
// header yields auth.ErrMissingToken.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", auth.ErrMissingToken
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errors.Join(auth.ErrMissingToken, errors.New("malformed authorization header"))
	}
	return token, nil
}
