package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"bhajaj.dev/internal/icons"
	"bhajaj.dev/internal/models"
)

// About renders the skills, highlights and publications regions
func About(a models.About) g.Node {
	return PageSection("about", "About Me", a.Intro, "bg-background",
		Div(
			Class("mb-16"),
			regionHeading("Technical Skills", "mb-8"),
			Div(
				Data("region", "skills"),
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8 max-w-6xl mx-auto"),
				g.Map(a.Skills, skillCard),
			),
		),
		Div(
			regionHeading("What I Bring", "mb-8"),
			Div(
				Data("region", "highlights"),
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6"),
				g.Map(a.Highlights, highlightCard),
			),
		),
		Div(
			Class("mt-16 max-w-4xl mx-auto"),
			regionHeading("Publications", "mb-6"),
			Div(
				Data("region", "publications"),
				Class("bg-card border border-border rounded-3xl p-6 space-y-3"),
				g.Map(a.Publications, publicationLink),
			),
		),
	)
}

func regionHeading(text, spacing string) g.Node {
	return H3(Class(cx("text-2xl font-bold text-center text-primary", spacing)), g.Text(text))
}

func skillCard(c models.SkillCategory) g.Node {
	return Card("skill", "border-border",
		CardHeader("pb-4",
			CardTitle("flex items-center text-lg",
				icons.SVG(c.Icon, "h-5 w-5 mr-2 text-[#bcd4e6]"),
				g.Text(c.Title),
			),
		),
		CardContent("", BadgeList(c.Skills)),
	)
}

func highlightCard(h models.Highlight) g.Node {
	return Card("highlight", "text-center border-border hover:shadow-lg transition-shadow",
		CardContent("pt-6",
			icons.SVG(h.Icon, "h-12 w-12 mx-auto mb-4 text-[#bcd4e6]"),
			H4(Class("font-semibold text-primary mb-2"), g.Text(h.Title)),
			P(Class("text-sm text-muted-foreground"), g.Text(h.Description)),
		),
	)
}

// publicationLink is rendered as-is; a bad href only breaks the link client-side
func publicationLink(p models.Publication) g.Node {
	return ExternalLink(p.Href,
		"block text-muted-foreground text-center hover:text-primary transition-colors",
		Data("publication", ""),
		g.Text(p.Title),
	)
}
