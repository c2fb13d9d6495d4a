package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/contacts-api/internal/api"
	apiMiddleware "github.com/phrazzld/contacts-api/internal/api/middleware"
)

const healthCheckTimeout = 2 * time.Second

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	authHandler := api.NewAuthHandler(app.accountService, app.logger)
	contactHandler := api.NewContactHandler(app.contactService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	// Authentication endpoints (public)
	r.Route("/autenticacao", func(r chi.Router) {
		r.Post("/create", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/login-form", authHandler.LoginForm)
		r.Get("/refresh", authHandler.Refresh)
	})

	// Contact endpoints (protected)
	r.Route("/contatos", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/list", contactHandler.List)
		r.Get("/list/{id}", contactHandler.Get)
		r.Post("/create", contactHandler.Create)
		r.Put("/update/{id}", contactHandler.Update)
		r.Delete("/delete/{id}", contactHandler.Delete)
	})

	r.Get("/health", app.health)

	return r
}

// health answers OK when the database responds to a ping.
func (app *application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := app.db.PingContext(ctx); err != nil {
		app.logger.Error("health check failed", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("database unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		app.logger.Error("failed to write health check response", slog.String("error", err.Error()))
	}
}
