package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/people-api/internal/config"
	"github.com/phrazzld/people-api/internal/domain"
	"github.com/phrazzld/people-api/internal/platform/metrics"
	"github.com/phrazzld/people-api/internal/validation"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	// directory is the read-only set of known person IDs.
	directory *domain.Directory
	validator *validation.Validator

	// metrics is nil when the metrics endpoint is disabled.
	metrics *metrics.Metrics
}

// newApplication creates a new application instance with all dependencies
// initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	app := &application{
		config:    cfg,
		logger:    logger,
		directory: domain.NewDirectory(cfg.Directory.People...),
		validator: validation.New(),
	}

	if cfg.Metrics.Enabled {
		app.metrics = metrics.New()
	}

	logger.Info("Application initialized successfully",
		"people", app.directory.Len(),
		"metrics_enabled", cfg.Metrics.Enabled)
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup runs after the server has stopped.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
