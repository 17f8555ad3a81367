package models

// EducationRecord represents one degree
type EducationRecord struct {
	Degree     string   `json:"degree" yaml:"degree"`
	School     string   `json:"school" yaml:"school"`
	Location   string   `json:"location" yaml:"location"`
	Duration   string   `json:"duration" yaml:"duration"`
	GPA        *string  `json:"gpa,omitempty" yaml:"gpa,omitempty"`
	Coursework []string `json:"coursework" yaml:"coursework"`
}

// HasGPA reports whether a GPA badge should be shown; an empty GPA counts as absent
func (e EducationRecord) HasGPA() bool {
	return e.GPA != nil && *e.GPA != ""
}
