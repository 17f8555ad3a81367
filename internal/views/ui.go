// Package views renders the portfolio sections as HTML nodes.
// Rendering the same values always produces the same bytes.
package views

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"bhajaj.dev/internal/icons"
	"bhajaj.dev/internal/models"
)

// BadgeVariant selects a badge style
type BadgeVariant string

const (
	BadgeDefault BadgeVariant = "default"
	BadgeOutline BadgeVariant = "outline"
)

// ButtonVariant selects a button style
type ButtonVariant string

const (
	ButtonOutline   ButtonVariant = "outline"
	ButtonSecondary ButtonVariant = "secondary"
)

const accentBadgeClass = "text-primary border-[#bcd4e6] hover:bg-[#bcd4e6]/10"

// cx joins the non-empty class lists
func cx(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// PageSection wraps a page region in a <section> anchored by id, with a heading block
func PageSection(id, title, lead, class string, children ...g.Node) g.Node {
	return Section(
		ID(id),
		Class(cx("py-20", class)),
		Div(
			Class("container mx-auto px-6"),
			Div(
				Class("text-center mb-16"),
				H2(Class("text-3xl md:text-4xl font-bold text-primary mb-4"), g.Text(title)),
				P(Class("text-lg text-muted-foreground max-w-3xl mx-auto"), g.Text(lead)),
			),
			g.Group(children),
		),
	)
}

// Card is a bordered container; kind is exposed as data-card for anchoring and styling
func Card(kind, class string, children ...g.Node) g.Node {
	return Div(
		Data("card", kind),
		Class(cx("rounded-lg border bg-card text-card-foreground shadow-sm", class)),
		g.Group(children),
	)
}

// CardHeader is the top block of a card
func CardHeader(class string, children ...g.Node) g.Node {
	return Div(Class(cx("flex flex-col space-y-1.5 p-6", class)), g.Group(children))
}

// CardTitle is the card heading
func CardTitle(class string, children ...g.Node) g.Node {
	return H3(Class(cx("font-semibold leading-none tracking-tight", class)), g.Group(children))
}

// CardContent is the card body
func CardContent(class string, children ...g.Node) g.Node {
	return Div(Class(cx("p-6 pt-0", class)), g.Group(children))
}

// Badge is a small inline label
func Badge(variant BadgeVariant, class, text string) g.Node {
	base := "inline-flex items-center rounded-full border px-2.5 py-0.5 text-xs font-semibold"
	if variant == BadgeDefault {
		base += " border-transparent"
	}
	return Span(
		Data("badge", string(variant)),
		Class(cx(base, class)),
		g.Text(text),
	)
}

// BadgeList renders items as wrapped outline badges, in order
func BadgeList(items []string) g.Node {
	return Div(
		Class("flex flex-wrap gap-2"),
		g.Map(items, func(item string) g.Node {
			return Badge(BadgeOutline, accentBadgeClass, item)
		}),
	)
}

// ExternalLink is an anchor that opens href in a new browsing context
func ExternalLink(href, class string, children ...g.Node) g.Node {
	return A(
		Href(href),
		Target("_blank"),
		Rel("noopener noreferrer"),
		Class(class),
		g.Group(children),
	)
}

// LinkButton is a button-styled external link with a leading icon
func LinkButton(variant ButtonVariant, icon models.Icon, label, href string) g.Node {
	class := "inline-flex items-center justify-center rounded-md text-sm font-medium h-9 px-3 flex-1 min-w-[120px]"
	switch variant {
	case ButtonOutline:
		class += " border border-input bg-background hover:bg-accent"
	case ButtonSecondary:
		class += " bg-secondary text-secondary-foreground hover:bg-secondary/80"
	}

	return ExternalLink(href, class,
		Data("action", strings.ToLower(label)),
		icons.SVG(icon, "h-4 w-4 mr-2"),
		g.Text(label),
	)
}
