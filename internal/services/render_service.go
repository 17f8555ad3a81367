package services

import (
	"bytes"
	"fmt"
	"time"

	"bhajaj.dev/internal/metrics"
	"bhajaj.dev/internal/views"
)

// pageMetricLabel is the section label used for full page renders
const pageMetricLabel = "page"

// RenderService renders portfolio markup
type RenderService struct {
	content  *ContentService
	title    string
	recorder metrics.Recorder
}

// NewRenderService creates a RenderService. A nil recorder disables metrics.
func NewRenderService(cs *ContentService, title string, recorder metrics.Recorder) *RenderService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &RenderService{content: cs, title: title, recorder: recorder}
}

// Page renders the full HTML document
func (s *RenderService) Page() ([]byte, error) {
	start := time.Now()

	var buf bytes.Buffer
	if err := views.Page(s.title, s.content.content).Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	s.recorder.RecordRender(pageMetricLabel, time.Since(start))
	return buf.Bytes(), nil
}

// Section renders one named section as an HTML fragment
func (s *RenderService) Section(name string) ([]byte, error) {
	start := time.Now()

	node, err := views.RenderSection(name, s.content.content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render section %s: %w", name, err)
	}

	s.recorder.RecordRender(name, time.Since(start))
	return buf.Bytes(), nil
}
