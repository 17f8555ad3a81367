// Package security provides sanitization for externally supplied content.
package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// TextSanitizer strips every HTML tag from a string and returns plain text.
// The view layer escapes text on render, so the policy's entity encoding
// is undone here to avoid double escaping.
type TextSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer creates a TextSanitizer backed by bluemonday's strict policy
func NewTextSanitizer() *TextSanitizer {
	return &TextSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize returns s with markup removed and surrounding whitespace trimmed
func (s *TextSanitizer) Sanitize(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}
