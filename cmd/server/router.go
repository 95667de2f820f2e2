package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/people-api/internal/api"
	"github.com/phrazzld/people-api/internal/api/docs"
	apiMiddleware "github.com/phrazzld/people-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	if app.metrics != nil {
		r.Use(apiMiddleware.NewMetricsMiddleware(app.metrics))
	}

	forms := api.FormBinding{
		MaxMemory: app.config.Upload.MaxMemoryBytes(),
		Metrics:   app.metrics,
	}

	homeHandler := api.NewHomeHandler()
	personHandler := api.NewPersonHandler(app.directory, app.validator, app.metrics, app.logger)
	authHandler := api.NewAuthHandler(app.validator, forms, app.logger)
	contactHandler := api.NewContactHandler(app.validator, forms, app.logger)
	uploadHandler := api.NewUploadHandler(app.validator, forms, app.logger)

	// Home
	r.Get("/", homeHandler.Home)

	// People
	r.Route("/person", func(r chi.Router) {
		r.Post("/new", personHandler.Create)
		r.Get("/detail", personHandler.ShowByQuery)
		r.Get("/detail/{person_id}", personHandler.ShowByID)
		r.Put("/{person_id}", personHandler.Update)
	})

	// Contact
	r.Post("/login", authHandler.Login)
	r.Post("/contact", contactHandler.Contact)

	// Upload
	r.Post("/post-image", uploadHandler.PostImage)

	// Documentation
	docs.Register(r)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if app.metrics != nil {
		r.Method(http.MethodGet, app.config.Metrics.Path, app.metrics.Handler())
	}

	return r
}
