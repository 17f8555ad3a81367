package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bhajaj.dev/internal/middleware"
	"bhajaj.dev/internal/services"
	"bhajaj.dev/internal/views"
)

// PageHandler serves rendered HTML
type PageHandler struct {
	renderService *services.RenderService
	logger        *slog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(rs *services.RenderService, logger *slog.Logger) *PageHandler {
	return &PageHandler{renderService: rs, logger: logger}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	body, err := h.renderService.Page()
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render page",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.RequestIDFromContext(r.Context())),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respondHTML(w, h.logger, http.StatusOK, body)
}

// Section handles GET /sections/{name}
func (h *PageHandler) Section(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, err := h.renderService.Section(name)
	if errors.Is(err, views.ErrUnknownSection) {
		http.Error(w, "section not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render section",
			slog.String("section", name),
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.RequestIDFromContext(r.Context())),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respondHTML(w, h.logger, http.StatusOK, body)
}
