package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"bhajaj.dev/internal/models"
)

// Sanitizer removes markup from free text
type Sanitizer interface {
	Sanitize(text string) string
}

// Load reads the content file at path, or returns the built-in dataset when path is empty.
// JSON files are accepted since YAML is a superset of JSON.
func Load(path string, s Sanitizer) (models.Content, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Content{}, fmt.Errorf("failed to read content file: %w", err)
	}

	c, err := Parse(data, s)
	if err != nil {
		return models.Content{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes, sanitizes and validates a content document
func Parse(data []byte, s Sanitizer) (models.Content, error) {
	var c models.Content

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return models.Content{}, errors.New("content file is empty")
		}
		return models.Content{}, fmt.Errorf("failed to parse content: %w", err)
	}

	c = sanitize(c, s)

	if err := c.Validate(); err != nil {
		return models.Content{}, fmt.Errorf("invalid content: %w", err)
	}
	return c, nil
}

// sanitize cleans every free-text field; URLs, ids and icons are left to Validate
func sanitize(c models.Content, s Sanitizer) models.Content {
	c = Clone(c)

	c.About.Intro = s.Sanitize(c.About.Intro)
	for i := range c.About.Skills {
		cat := &c.About.Skills[i]
		cat.Title = s.Sanitize(cat.Title)
		sanitizeAll(cat.Skills, s)
	}
	for i := range c.About.Highlights {
		h := &c.About.Highlights[i]
		h.Title = s.Sanitize(h.Title)
		h.Description = s.Sanitize(h.Description)
	}
	for i := range c.About.Publications {
		c.About.Publications[i].Title = s.Sanitize(c.About.Publications[i].Title)
	}

	for i := range c.Education {
		e := &c.Education[i]
		e.Degree = s.Sanitize(e.Degree)
		e.School = s.Sanitize(e.School)
		e.Location = s.Sanitize(e.Location)
		e.Duration = s.Sanitize(e.Duration)
		if e.GPA != nil {
			gpa := s.Sanitize(*e.GPA)
			e.GPA = &gpa
			if gpa == "" {
				e.GPA = nil
			}
		}
		sanitizeAll(e.Coursework, s)
	}

	for i := range c.Projects {
		p := &c.Projects[i]
		p.Title = s.Sanitize(p.Title)
		p.Description = s.Sanitize(p.Description)
		sanitizeAll(p.Technologies, s)
		sanitizeAll(p.Features, s)
	}

	return c
}

func sanitizeAll(items []string, s Sanitizer) {
	for i, item := range items {
		items[i] = s.Sanitize(item)
	}
}
