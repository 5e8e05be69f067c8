package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskflow/taskflow-api/internal/api"
	apiMiddleware "github.com/taskflow/taskflow-api/internal/api/middleware"
)

// setupRouter builds the application router: standard chi middleware,
// trace IDs, the public auth endpoints, the session-protected API
// group, and the page routes with their redirect guards.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	authHandler := api.NewAuthHandler(app.userStore, app.sessions, app.hasher, app.sessionCookie)
	taskHandler := api.NewTaskHandler(app.taskStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.sessions, app.sessionCookie)
	pageGuard := apiMiddleware.NewPageGuard(app.sessions, app.sessionCookie)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			r.Get("/tasks", taskHandler.List)
			r.Post("/tasks", taskHandler.Create)
			r.Get("/tasks/{id}", taskHandler.Get)
			r.Patch("/tasks/{id}", taskHandler.Patch)
			r.Delete("/tasks/{id}", taskHandler.Delete)
		})
	})

	// Page routes. The guards only redirect; rendering is left to the
	// static frontend deployed alongside the API.
	r.Group(func(r chi.Router) {
		r.Use(pageGuard.RequireSession)
		r.Get(apiMiddleware.DashboardPath, app.pagePlaceholder("dashboard"))
	})
	r.Group(func(r chi.Router) {
		r.Use(pageGuard.RedirectAuthenticated)
		r.Get(apiMiddleware.LoginPath, app.pagePlaceholder("login"))
		r.Get(apiMiddleware.RegisterPath, app.pagePlaceholder("register"))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

// pagePlaceholder serves a minimal page body once the guard has let
// the request through.
func (app *application) pagePlaceholder(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("<!DOCTYPE html><title>TaskFlow</title><div id=\"" + name + "\"></div>")); err != nil {
			app.logger.Error("failed to write page response", "page", name, "error", err)
		}
	}
}
