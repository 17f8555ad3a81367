package views

import (
	"errors"
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"bhajaj.dev/internal/models"
)

// ErrUnknownSection is returned for a section name outside SectionNames
var ErrUnknownSection = errors.New("unknown section")

// SectionNames lists the page sections in display order
var SectionNames = []string{"about", "education", "projects"}

// RenderSection returns the node for a single named section
func RenderSection(name string, c models.Content) (g.Node, error) {
	switch name {
	case "about":
		return About(c.About), nil
	case "education":
		return Education(c.Education), nil
	case "projects":
		return Projects(c.Projects), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

// Page wraps all sections in a minimal HTML document
func Page(title string, c models.Content) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
			),
			Body(
				Main(
					About(c.About),
					Education(c.Education),
					Projects(c.Projects),
				),
			),
		),
	)
}
