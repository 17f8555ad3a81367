package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"bhajaj.dev/internal/models"
)

const (
	projectsLead    = "Applied research and product builds that translate AI concepts into measurable outcomes."
	projectGridBase = "grid grid-cols-1 lg:grid-cols-2 gap-8"
	bullet          = "•"
)

// ProjectGridClass picks the desktop column count from the number of projects.
// Exactly four projects get a 2x2 grid; any other count gets three columns.
func ProjectGridClass(n int) string {
	if n == 4 {
		return projectGridBase + " xl:grid-cols-2"
	}
	return projectGridBase + " xl:grid-cols-3"
}

// Projects renders the project grid
func Projects(projects []models.Project) g.Node {
	return PageSection("projects", "Projects", projectsLead, "bg-[#bcd4e6]",
		Div(
			Data("region", "projects"),
			Class(ProjectGridClass(len(projects))),
			g.Map(projects, projectCard),
		),
	)
}

func projectCard(p models.Project) g.Node {
	return Card("project", "border-border hover:shadow-lg transition-shadow h-full flex flex-col",
		g.If(p.ID != "", ID("project-"+p.ID)),
		CardHeader("",
			CardTitle("text-xl text-primary mb-2", g.Text(p.Title)),
			P(Class("text-muted-foreground text-sm"), g.Text(p.Description)),
		),
		CardContent("flex-1 flex flex-col space-y-4",
			Div(
				H4(Class("font-semibold text-primary mb-2"), g.Text("Key Highlights")),
				Ul(
					Class("text-sm text-muted-foreground space-y-2"),
					g.Map(p.Features, featureItem),
				),
			),
			Div(
				H4(Class("font-semibold text-primary mb-2"), g.Text("Technologies")),
				BadgeList(p.Technologies),
			),
			actionRow(p),
		),
	)
}

func featureItem(feature string) g.Node {
	return Li(
		Class("flex items-start gap-2"),
		Span(Class("text-[#bcd4e6] mt-1"), g.Text(bullet)),
		Span(g.Text(feature)),
	)
}

// actionRow renders the Code and Demo buttons, or nothing when the project has neither link
func actionRow(p models.Project) g.Node {
	if !p.HasActions() {
		return nil
	}

	var buttons []g.Node
	if p.HasGitHub() {
		buttons = append(buttons, LinkButton(ButtonOutline, models.IconGitHub, "Code", *p.GitHub))
	}
	if p.HasDemo() {
		buttons = append(buttons, LinkButton(ButtonSecondary, models.IconExternalLink, "Demo", *p.Demo))
	}

	return Div(
		Data("slot", "actions"),
		Class("mt-auto flex flex-wrap gap-3"),
		g.Group(buttons),
	)
}
