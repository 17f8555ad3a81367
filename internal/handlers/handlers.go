package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"bhajaj.dev/internal/metrics"
	"bhajaj.dev/internal/middleware"
	"bhajaj.dev/internal/services"
)

// RouterDeps holds everything SetupRoutes wires into the router
type RouterDeps struct {
	Logger         *slog.Logger
	ContentService *services.ContentService
	RenderService  *services.RenderService
	RateLimiter    *middleware.RateLimiter

	// TrustProxyHeaders mounts RealIP so X-Forwarded-For / X-Real-IP replace RemoteAddr
	TrustProxyHeaders bool

	// Recorder counts response statuses; MetricsHandler is mounted at /metrics when set
	Recorder       metrics.Recorder
	MetricsHandler http.Handler
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	recorder := deps.Recorder
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	// Middleware
	if deps.TrustProxyHeaders {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics(recorder))
	r.Use(middleware.SecurityHeaders)
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware)
	}

	pageHandler := NewPageHandler(deps.RenderService, logger)
	contentHandler := NewContentHandler(deps.ContentService, logger)
	projectHandler := NewProjectHandler(deps.ContentService, logger)

	// HTML routes
	r.Get("/", pageHandler.Index)
	r.Get("/sections/{name}", pageHandler.Section)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/about", contentHandler.GetAbout)
		r.Get("/education", contentHandler.ListEducation)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, logger, http.StatusNotFound, "Not found")
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}

// respondHTML writes a rendered HTML document or fragment
func respondHTML(w http.ResponseWriter, logger *slog.Logger, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Error("failed to write HTML response", slog.String("error", err.Error()))
	}
}
