// Package server provides the HTTP server hosting the REST API.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/equilibra/v1/internal/infrastructure/config"
	"github.com/equilibra/v1/internal/infrastructure/http/handlers"
	"github.com/equilibra/v1/internal/infrastructure/http/middleware"
	"github.com/equilibra/v1/internal/infrastructure/monitoring"
	"github.com/equilibra/v1/internal/ports/inbound"
	"github.com/equilibra/v1/pkg/healthcheck"
)

// Server represents the HTTP server
type Server struct {
	config  *config.Config
	logger  *zap.Logger
	router  *chi.Mux
	server  *http.Server
	metrics *monitoring.MetricsCollector
	checker *healthcheck.Checker
}

// NewServer creates a new HTTP server instance. The checker may be nil
// when the server has no external dependencies to probe.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	nutritionService inbound.NutritionService,
	catalogService inbound.CatalogService,
	metrics *monitoring.MetricsCollector,
	checker *healthcheck.Checker,
) *Server {
	s := &Server{
		config:  cfg,
		logger:  logger,
		metrics: metrics,
		checker: checker,
	}

	s.router = s.setupRouter(nutritionService, catalogService)

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter(
	nutritionService inbound.NutritionService,
	catalogService inbound.CatalogService,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))

	if s.metrics != nil {
		r.Use(middleware.Metrics(s.metrics.RecordHTTPRequest))
	}

	h := handlers.NewAPIHandlers(nutritionService, catalogService, s.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommendations", h.Recommend)
		r.Post("/plans", h.BuildPlan)

		r.Route("/foods", func(r chi.Router) {
			r.Get("/", h.ListFoods)
			r.Get("/{id}", h.GetFood)
		})

		r.Route("/overrides", func(r chi.Router) {
			r.Use(middleware.Authenticate(s.config.Auth.JWTSecret))
			r.Get("/{userID}/{itemID}", h.GetOverride)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePractitioner(s.config.Auth.JWTSecret))
				r.Post("/", h.CreateOverride)
			})
		})
	})

	// Operational endpoints
	r.Get(s.config.Monitoring.HealthCheckPath, h.HealthCheck)
	r.Get(s.config.Monitoring.ReadinessPath, s.handleReadiness)
	if s.metrics != nil && s.config.Monitoring.EnableMetrics {
		r.Handle(s.config.Monitoring.MetricsPath, s.metrics.Handler())
	}

	return r
}

// handleReadiness reports whether the server's dependencies are reachable.
func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if s.checker == nil {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status":"ready"}`)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	results := s.checker.Results(ctx)
	status := "ready"
	code := http.StatusOK
	for _, result := range results {
		if !result.Healthy {
			status = "not ready"
			code = http.StatusServiceUnavailable
			break
		}
	}

	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status": status,
		"checks": results,
	}); err != nil {
		s.logger.Error("Failed to encode readiness response", zap.Error(err))
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
