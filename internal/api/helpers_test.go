package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/contacts-api/internal/api/middleware"
	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/mocks"
	"github.com/phrazzld/contacts-api/internal/service"
)

// testEnv bundles a router with the mocks behind it.
type testEnv struct {
	router   http.Handler
	users    *mocks.MockUserStore
	contacts *mocks.MockContactStore
	tokens   *mocks.MockTokenService
}

func newTestEnv(t *testing.T, users *mocks.MockUserStore, contacts *mocks.MockContactStore) *testEnv {
	t.Helper()

	if users == nil {
		users = mocks.NewMockUserStore()
	}
	if contacts == nil {
		contacts = mocks.NewMockContactStore()
	}
	tokens := &mocks.MockTokenService{}

	accounts := service.NewAccountService(users, &mocks.MockPasswordHasher{}, tokens, nil)
	authHandler := NewAuthHandler(accounts, nil)
	contactHandler := NewContactHandler(service.NewContactService(contacts, nil), nil)
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	r := chi.NewRouter()
	r.Route("/autenticacao", func(r chi.Router) {
		r.Post("/create", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/login-form", authHandler.LoginForm)
		r.Get("/refresh", authHandler.Refresh)
	})
	r.Route("/contatos", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/list", contactHandler.List)
		r.Get("/list/{id}", contactHandler.Get)
		r.Post("/create", contactHandler.Create)
		r.Put("/update/{id}", contactHandler.Update)
		r.Delete("/delete/{id}", contactHandler.Delete)
	})

	return &testEnv{router: r, users: users, contacts: contacts, tokens: tokens}
}

// do sends a request with an optional JSON body and bearer token.
func (e *testEnv) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors shared.Envelope with data left undecoded.
type envelope struct {
	Message        string          `json:"message"`
	Data           json.RawMessage `json:"data"`
	Status         string          `json:"status"`
	HTTPStatus     string          `json:"HTTPStatus"`
	HTTPStatusCode int             `json:"HTTPStatusCode"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	require.Equal(t, rec.Code, env.HTTPStatusCode)
	require.Equal(t, shared.StatusFor(rec.Code), env.Status)
	require.Equal(t, http.StatusText(rec.Code), env.HTTPStatus)
	return env
}

func decodeData(t *testing.T, env envelope, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}
