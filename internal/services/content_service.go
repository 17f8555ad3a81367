package services

import (
	"errors"
	"fmt"

	"bhajaj.dev/internal/content"
	"bhajaj.dev/internal/models"
)

// ErrProjectNotFound is returned when no project has the requested ID
var ErrProjectNotFound = errors.New("project not found")

// ContentService serves read-only portfolio content
type ContentService struct {
	content models.Content
}

// NewContentService creates a ContentService over a private copy of c
func NewContentService(c models.Content) *ContentService {
	return &ContentService{content: content.Clone(c)}
}

// Content returns a copy of the whole dataset
func (s *ContentService) Content() models.Content {
	return content.Clone(s.content)
}

// About returns the about section data
func (s *ContentService) About() models.About {
	return content.Clone(models.Content{About: s.content.About}).About
}

// Education returns all education records in display order
func (s *ContentService) Education() []models.EducationRecord {
	return content.Clone(models.Content{Education: s.content.Education}).Education
}

// Projects returns all projects in display order
func (s *ContentService) Projects() []models.Project {
	return content.Clone(models.Content{Projects: s.content.Projects}).Projects
}

// ProjectByID returns a specific project by ID
func (s *ContentService) ProjectByID(id string) (models.Project, error) {
	for _, p := range s.content.Projects {
		if p.ID == id {
			return content.Clone(models.Content{Projects: []models.Project{p}}).Projects[0], nil
		}
	}
	return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}
