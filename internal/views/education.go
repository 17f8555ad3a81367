package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"bhajaj.dev/internal/icons"
	"bhajaj.dev/internal/models"
)

const educationLead = "Rigorous grounding in AI, data science, and systems engineering."

// Education renders one detail card per record, in order
func Education(records []models.EducationRecord) g.Node {
	return PageSection("education", "Education", educationLead, "bg-[#bcd4e6]",
		Div(
			Class("max-w-4xl mx-auto space-y-8"),
			g.Map(records, educationCard),
		),
	)
}

func educationCard(e models.EducationRecord) g.Node {
	return Card("education", "bg-white/90 backdrop-blur-sm border-white/20 shadow-lg",
		CardHeader("",
			Div(
				Class("flex items-start justify-between"),
				Div(
					Class("flex items-center space-x-3"),
					icons.SVG(models.IconGraduationCap, "h-6 w-6 text-[#bcd4e6]"),
					Div(
						CardTitle("text-xl text-primary", g.Text(e.Degree)),
						P(Class("text-lg font-semibold text-muted-foreground mt-1"), g.Text(e.School)),
					),
				),
				gpaBadge(e),
			),
			Div(
				Class("flex flex-wrap gap-4 mt-4 text-sm text-muted-foreground"),
				iconLine(models.IconCalendar, e.Duration),
				iconLine(models.IconMapPin, e.Location),
			),
		),
		CardContent("",
			H4(Class("font-semibold text-primary mb-3"), g.Text("Relevant Coursework")),
			BadgeList(e.Coursework),
		),
	)
}

func gpaBadge(e models.EducationRecord) g.Node {
	if !e.HasGPA() {
		return nil
	}
	return Badge(BadgeDefault, "bg-[#bcd4e6]/20 text-primary", "GPA: "+*e.GPA)
}

func iconLine(icon models.Icon, text string) g.Node {
	return Div(
		Class("flex items-center"),
		icons.SVG(icon, "h-4 w-4 mr-2 text-[#bcd4e6]"),
		g.Text(text),
	)
}
