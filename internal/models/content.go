package models

import (
	"errors"
	"fmt"
	"net/url"
)

// Content is the full dataset rendered by the site
type Content struct {
	About     About             `json:"about" yaml:"about"`
	Education []EducationRecord `json:"education" yaml:"education"`
	Projects  []Project         `json:"projects" yaml:"projects"`
}

// Validate checks links, icons and identifiers, returning every problem found
func (c Content) Validate() error {
	var errs []error

	for i, cat := range c.About.Skills {
		if cat.Title == "" {
			errs = append(errs, fmt.Errorf("skills[%d]: empty title", i))
		}
		if !cat.Icon.Valid() {
			errs = append(errs, fmt.Errorf("skills[%d]: unknown icon %q", i, cat.Icon))
		}
	}

	for i, h := range c.About.Highlights {
		if h.Title == "" {
			errs = append(errs, fmt.Errorf("highlights[%d]: empty title", i))
		}
		if !h.Icon.Valid() {
			errs = append(errs, fmt.Errorf("highlights[%d]: unknown icon %q", i, h.Icon))
		}
	}

	for i, p := range c.About.Publications {
		if err := ValidateURL(p.Href); err != nil {
			errs = append(errs, fmt.Errorf("publications[%d]: %w", i, err))
		}
	}

	for i, e := range c.Education {
		if e.Degree == "" {
			errs = append(errs, fmt.Errorf("education[%d]: empty degree", i))
		}
	}

	seen := make(map[string]bool, len(c.Projects))
	for i, p := range c.Projects {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: empty id", i))
		} else if seen[p.ID] {
			errs = append(errs, fmt.Errorf("projects[%d]: duplicate id %q", i, p.ID))
		}
		seen[p.ID] = true

		if p.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: empty title", i))
		}
		if p.GitHub != nil {
			if err := ValidateURL(*p.GitHub); err != nil {
				errs = append(errs, fmt.Errorf("projects[%d].github: %w", i, err))
			}
		}
		if p.Demo != nil {
			if err := ValidateURL(*p.Demo); err != nil {
				errs = append(errs, fmt.Errorf("projects[%d].demo: %w", i, err))
			}
		}
	}

	return errors.Join(errs...)
}

// ValidateURL accepts only absolute http(s) URLs with a host
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid url %q: missing host", raw)
	}
	return nil
}
