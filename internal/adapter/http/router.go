package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/kiraazuma/jijiken-potato-pos/internal/adapter/http/handler"
	"github.com/kiraazuma/jijiken-potato-pos/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	SessionHandler *handler.SessionHandler
	SaleHandler    *handler.SaleHandler
	StatsHandler   *handler.StatsHandler
	ConfigHandler  *handler.ConfigHandler
	HealthHandler  *handler.HealthHandler
	Logger         zerolog.Logger
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
		// Pricing defaults for register UIs
		r.Get("/config", cfg.ConfigHandler.Get)

		// Register sessions
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", cfg.SessionHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/basket", cfg.SessionHandler.Basket)
				r.Post("/items", cfg.SessionHandler.AddItem)
				r.Post("/items/base", cfg.SessionHandler.AddBaseItem)
				r.Post("/items/seminar", cfg.SessionHandler.AddSeminarItem)
				r.Post("/items/discount", cfg.SessionHandler.AddDiscountItem)
				r.Post("/discount", cfg.SessionHandler.AuthorizeDiscount)
				r.Post("/reset", cfg.SessionHandler.Reset)
				r.Post("/confirm", cfg.SessionHandler.Confirm)
			})
		})

		// Ledger-level operations
		r.Post("/sales/void-last", cfg.SaleHandler.VoidLast)

		// Reporting
		r.Route("/stats", func(r chi.Router) {
			r.Get("/today", cfg.StatsHandler.Today)
			r.Get("/period", cfg.StatsHandler.Period)
		})
	})

	return r
}
