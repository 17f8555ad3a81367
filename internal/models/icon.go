package models

// Icon identifies one glyph from the fixed icon set
type Icon string

const (
	IconCode          Icon = "code"
	IconUsers         Icon = "users"
	IconZap           Icon = "zap"
	IconDatabase      Icon = "database"
	IconCloud         Icon = "cloud"
	IconSparkles      Icon = "sparkles"
	IconServer        Icon = "server"
	IconGraduationCap Icon = "graduation-cap"
	IconMapPin        Icon = "map-pin"
	IconCalendar      Icon = "calendar"
	IconGitHub        Icon = "github"
	IconExternalLink  Icon = "external-link"
)

// Icons lists every known icon
var Icons = []Icon{
	IconCode,
	IconUsers,
	IconZap,
	IconDatabase,
	IconCloud,
	IconSparkles,
	IconServer,
	IconGraduationCap,
	IconMapPin,
	IconCalendar,
	IconGitHub,
	IconExternalLink,
}

// Valid reports whether i is part of the icon set
func (i Icon) Valid() bool {
	for _, known := range Icons {
		if i == known {
			return true
		}
	}
	return false
}
