// Package api provides the HTTP API for the crop requirements service.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/farmstack/cropreqs/internal/api/handler"
	"github.com/farmstack/cropreqs/internal/api/middleware"
	"github.com/farmstack/cropreqs/internal/api/response"
	"github.com/farmstack/cropreqs/internal/crops"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics
	CropService *crops.Service
	RequireTLS  bool
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "crop-requirements-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))         // Structured logging
	r.Use(middleware.Recovery(cfg.Logger))       // Panic recovery
	r.Use(chimiddleware.RealIP)                  // Real IP extraction
	r.Use(middleware.SecurityHeaders)            // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS(cfg.RequireTLS)) // TLS enforcement
	r.Use(middleware.ContentTypeJSON)            // JSON content type

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, req, "no route matches "+req.URL.Path)
	})

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.CropService)
	cropsHandler := handler.NewCropsHandler(cfg.CropService)

	lookupRateLimit := middleware.RateLimitByIP(middleware.LookupRateLimit) // 100 req/min
	searchRateLimit := middleware.RateLimitByIP(middleware.SearchRateLimit) // 60 req/min

	r.Route("/v1", func(r chi.Router) {
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		r.Route("/crops", func(r chi.Router) {
			r.Use(lookupRateLimit)
			r.Get("/", cropsHandler.List)
			r.Get("/types", cropsHandler.Types)
			r.With(searchRateLimit).Get("/search", cropsHandler.Search)
			r.Get("/{name}", cropsHandler.Resolve)
		})
	})

	return r
}
