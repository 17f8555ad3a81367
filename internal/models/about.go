package models

// About holds everything shown in the About section
type About struct {
	Intro        string          `json:"intro" yaml:"intro"`
	Skills       []SkillCategory `json:"skills" yaml:"skills"`
	Highlights   []Highlight     `json:"highlights" yaml:"highlights"`
	Publications []Publication   `json:"publications" yaml:"publications"`
}

// SkillCategory groups related skills under one icon
type SkillCategory struct {
	Title  string   `json:"title" yaml:"title"`
	Skills []string `json:"skills" yaml:"skills"`
	Icon   Icon     `json:"icon" yaml:"icon"`
}

// Highlight is a short "what I bring" blurb
type Highlight struct {
	Icon        Icon   `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Publication is an outbound citation link
type Publication struct {
	Title string `json:"title" yaml:"title"`
	Href  string `json:"href" yaml:"href"`
}
