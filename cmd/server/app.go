package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskflow/taskflow-api/internal/api"
	"github.com/taskflow/taskflow-api/internal/config"
	"github.com/taskflow/taskflow-api/internal/platform/postgres"
	"github.com/taskflow/taskflow-api/internal/service/auth"
	"github.com/taskflow/taskflow-api/internal/store"
)

// application holds the process-wide dependencies: configuration, the
// pooled database connection, and the constructed services and stores.
// Everything is built once at startup and injected explicitly; nothing
// here mutates after construction.
type application struct {
	config        *config.Config
	logger        *slog.Logger
	db            *sql.DB
	userStore     store.UserStore
	taskStore     store.TaskStore
	sessions      auth.SessionService
	hasher        auth.PasswordHasher
	sessionCookie *api.SessionCookie
}

// newApplication wires the application's dependency graph.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	sessions, err := auth.NewSessionService(cfg.Auth)
	if err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	hasher := auth.NewBcryptHasher()

	return &application{
		config:        cfg,
		logger:        logger,
		db:            db,
		userStore:     postgres.NewUserStore(db, hasher, logger),
		taskStore:     postgres.NewTaskStore(db, logger),
		sessions:      sessions,
		hasher:        hasher,
		sessionCookie: api.NewSessionCookie(cfg.Server.IsProduction()),
	}, nil
}

// cleanup releases the application's resources.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
}

// closeDatabase closes the pool, logging on failure.
func closeDatabase(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close database connection", "error", err)
	}
}
