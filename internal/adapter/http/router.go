package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/vkmindia80/reconcile/internal/adapter/http/handler"
	"github.com/vkmindia80/reconcile/internal/adapter/http/middleware"
	"github.com/vkmindia80/reconcile/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	SessionHandler   *handler.SessionHandler
	MatchHandler     *handler.MatchHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Route("/reconciliations", func(r chi.Router) {
			r.Post("/", cfg.SessionHandler.Upload)
			r.Get("/", cfg.SessionHandler.List)
			r.Get("/{id}", cfg.SessionHandler.Get)
			r.Delete("/{id}", cfg.SessionHandler.Delete)
			r.Post("/{id}/complete", cfg.SessionHandler.Complete)
			r.Put("/{id}/notes", cfg.SessionHandler.UpdateNotes)
			r.Get("/{id}/report", cfg.SessionHandler.Report)

			r.Route("/{id}/entries/{entryID}", func(r chi.Router) {
				r.Get("/suggestions", cfg.MatchHandler.Suggestions)
				r.Post("/match", cfg.MatchHandler.Match)
				r.Post("/unmatch", cfg.MatchHandler.Unmatch)
			})
		})
	})

	return r
}
