package models

// Project represents a portfolio project card
type Project struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Features     []string `json:"features" yaml:"features"`
	GitHub       *string  `json:"github,omitempty" yaml:"github,omitempty"`
	Demo         *string  `json:"demo,omitempty" yaml:"demo,omitempty"`
}

// HasGitHub reports whether the project links to its source code
func (p Project) HasGitHub() bool {
	return p.GitHub != nil
}

// HasDemo reports whether the project links to a live demo
func (p Project) HasDemo() bool {
	return p.Demo != nil
}

// HasActions reports whether the action row should be shown at all
func (p Project) HasActions() bool {
	return p.HasGitHub() || p.HasDemo()
}
