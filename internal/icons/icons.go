// Package icons resolves icon identifiers to inline SVG.
//
// Path data follows the lucide icon set (24x24 viewBox, stroked).
package icons

import (
	g "maragu.dev/gomponents"

	"bhajaj.dev/internal/models"
)

var paths = map[models.Icon]string{
	models.IconCode: `<polyline points="16 18 22 12 16 6"/><polyline points="8 6 2 12 8 18"/>`,

	models.IconUsers: `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/>` +
		`<path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,

	models.IconZap: `<polygon points="13 2 3 14 12 14 11 22 21 10 12 10 13 2"/>`,

	models.IconDatabase: `<ellipse cx="12" cy="5" rx="9" ry="3"/><path d="M3 5V19A9 3 0 0 0 21 19V5"/>` +
		`<path d="M3 12A9 3 0 0 0 21 12"/>`,

	models.IconCloud: `<path d="M17.5 19H9a7 7 0 1 1 6.71-9h1.79a4.5 4.5 0 1 1 0 9Z"/>`,

	models.IconSparkles: `<path d="m12 3-1.912 5.813a2 2 0 0 1-1.275 1.275L3 12l5.813 1.912a2 2 0 0 1 1.275 1.275L12 21` +
		`l1.912-5.813a2 2 0 0 1 1.275-1.275L21 12l-5.813-1.912a2 2 0 0 1-1.275-1.275L12 3Z"/>` +
		`<path d="M5 3v4"/><path d="M19 17v4"/><path d="M3 5h4"/><path d="M17 19h4"/>`,

	models.IconServer: `<rect width="20" height="8" x="2" y="2" rx="2" ry="2"/><rect width="20" height="8" x="2" y="14" rx="2" ry="2"/>` +
		`<line x1="6" x2="6.01" y1="6" y2="6"/><line x1="6" x2="6.01" y1="18" y2="18"/>`,

	models.IconGraduationCap: `<path d="M22 10v6M2 10l10-5 10 5-10 5z"/><path d="M6 12v5c3 3 9 3 12 0v-5"/>`,

	models.IconMapPin: `<path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"/><circle cx="12" cy="10" r="3"/>`,

	models.IconCalendar: `<rect width="18" height="18" x="3" y="4" rx="2" ry="2"/><line x1="16" x2="16" y1="2" y2="6"/>` +
		`<line x1="8" x2="8" y1="2" y2="6"/><line x1="3" x2="21" y1="10" y2="10"/>`,

	models.IconGitHub: `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 ` +
		`0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5` +
		`-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"/><path d="M9 18c-4.51 2-5-2-7-2"/>`,

	models.IconExternalLink: `<path d="M15 3h6v6"/><path d="M10 14 21 3"/>` +
		`<path d="M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"/>`,
}

// Has reports whether icon has SVG data
func Has(icon models.Icon) bool {
	_, ok := paths[icon]
	return ok
}

// SVG renders icon as an inline svg element with the given classes.
// Unknown icons render nothing.
func SVG(icon models.Icon, class string) g.Node {
	body, ok := paths[icon]
	if !ok {
		return nil
	}

	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", string(icon)),
		g.Attr("class", class),
		g.Raw(body),
	)
}
