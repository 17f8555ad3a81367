package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bhajaj.dev/internal/models"
	"bhajaj.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	contentService *services.ContentService
	logger         *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(cs *services.ContentService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{contentService: cs, logger: logger}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.contentService.Projects()
	if projects == nil {
		projects = []models.Project{}
	}
	respondJSON(w, h.logger, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.contentService.ProjectByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, project)
}
