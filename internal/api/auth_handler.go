package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/contacts-api/internal/api/middleware"
	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/service"
)

// AuthHandler handles the /autenticacao routes.
type AuthHandler struct {
	accounts  service.AccountService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(accounts service.AccountService, logger *slog.Logger) *AuthHandler {
	if accounts == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("accounts cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		accounts:  accounts,
		validator: newValidator(),
		logger:    logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /autenticacao/create.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.accounts.Register(r.Context(), req.Nome, req.Email, req.SenhaHash)
	if err != nil {
		HandleAPIError(w, r, err, msgCreateUserError)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("user registered via API",
		slog.Int64("user_id", user.ID))
	shared.RespondOK(w, r, msgUserCreated, userToResponse(user))
}

// Login handles POST /autenticacao/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	pair, err := h.accounts.Authenticate(r.Context(), req.Email, req.Senha)
	if err != nil {
		HandleAPIError(w, r, err, msgLoginError)
		return
	}

	shared.RespondOK(w, r, msgLoggedIn, LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    TokenTypeBearer,
	})
}

// LoginForm handles POST /autenticacao/login-form, the OAuth2 password flow
// used by interactive API clients. The username field carries the email.
// Success is answered with a bare token body; errors are enveloped.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidRequest, err)
		return
	}

	pair, err := h.accounts.Authenticate(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		HandleAPIError(w, r, err, msgLoginError)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: pair.AccessToken,
		TokenType:   TokenTypeBearer,
	})
}

// Refresh handles GET /autenticacao/refresh. The bearer token must be valid
// and its user must still exist.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.BearerToken(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	access, err := h.accounts.Refresh(r.Context(), token)
	if err != nil {
		HandleAPIError(w, r, err, msgRefreshError)
		return
	}

	shared.RespondOK(w, r, msgTokenRefreshed, TokenResponse{
		AccessToken: access,
		TokenType:   TokenTypeBearer,
	})
}
