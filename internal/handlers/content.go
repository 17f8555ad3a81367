package handlers

import (
	"log/slog"
	"net/http"

	"bhajaj.dev/internal/models"
	"bhajaj.dev/internal/services"
)

// ContentHandler serves the about and education data as JSON
type ContentHandler struct {
	contentService *services.ContentService
	logger         *slog.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(cs *services.ContentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{contentService: cs, logger: logger}
}

// GetAbout handles GET /api/about
func (h *ContentHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.contentService.About())
}

// ListEducation handles GET /api/education
func (h *ContentHandler) ListEducation(w http.ResponseWriter, r *http.Request) {
	records := h.contentService.Education()
	if records == nil {
		records = []models.EducationRecord{}
	}
	respondJSON(w, h.logger, http.StatusOK, records)
}
