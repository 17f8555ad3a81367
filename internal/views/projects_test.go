package views

import (
	"fmt"
	"strings"
	"testing"

	"bhajaj.dev/internal/content"
	"bhajaj.dev/internal/models"
)

func strPtr(s string) *string { return &s }

func makeProjects(n int) []models.Project {
	projects := make([]models.Project, n)
	for i := range projects {
		projects[i] = models.Project{
			ID:           fmt.Sprintf("p%d", i),
			Title:        fmt.Sprintf("Project %d", i),
			Description:  "desc",
			Technologies: []string{"Go"},
			Features:     []string{"fast"},
		}
	}
	return projects
}

func TestProjectGridClass(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "xl:grid-cols-3"},
		{1, "xl:grid-cols-3"},
		{3, "xl:grid-cols-3"},
		{4, "xl:grid-cols-2"},
		{5, "xl:grid-cols-3"},
		{8, "xl:grid-cols-3"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d projects", tt.n), func(t *testing.T) {
			got := ProjectGridClass(tt.n)
			if !strings.HasSuffix(got, tt.want) {
				t.Errorf("ProjectGridClass(%d) = %q, want suffix %q", tt.n, got, tt.want)
			}
			if !strings.HasPrefix(got, "grid grid-cols-1 lg:grid-cols-2 gap-8") {
				t.Errorf("ProjectGridClass(%d) = %q, missing base classes", tt.n, got)
			}
		})
	}
}

func TestProjects_GridLayoutFollowsCount(t *testing.T) {
	tests := []struct {
		n         int
		wantClass string
		notClass  string
	}{
		{3, "xl:grid-cols-3", "xl:grid-cols-2"},
		{4, "xl:grid-cols-2", "xl:grid-cols-3"},
		{5, "xl:grid-cols-3", "xl:grid-cols-2"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d projects", tt.n), func(t *testing.T) {
			doc := parse(t, Projects(makeProjects(tt.n)))

			grids := findAll(doc, hasAttr("data-region", "projects"))
			if len(grids) != 1 {
				t.Fatalf("found %d project grids, want 1", len(grids))
			}
			if !hasClass(grids[0], tt.wantClass) {
				t.Errorf("grid classes %v missing %q", classList(grids[0]), tt.wantClass)
			}
			if hasClass(grids[0], tt.notClass) {
				t.Errorf("grid classes %v should not contain %q", classList(grids[0]), tt.notClass)
			}

			cards := findAll(doc, hasAttr("data-card", "project"))
			if len(cards) != tt.n {
				t.Errorf("rendered %d project cards, want %d", len(cards), tt.n)
			}
		})
	}
}

func TestProjects_ActionRow(t *testing.T) {
	const (
		githubURL = "https://github.com/example/repo"
		demoURL   = "https://demo.example.com"
	)

	tests := []struct {
		name        string
		github      *string
		demo        *string
		wantRow     bool
		wantActions map[string]string
	}{
		{"no links", nil, nil, false, map[string]string{}},
		{"github only", strPtr(githubURL), nil, true, map[string]string{"code": githubURL}},
		{"demo only", nil, strPtr(demoURL), true, map[string]string{"demo": demoURL}},
		{"both", strPtr(githubURL), strPtr(demoURL), true, map[string]string{"code": githubURL, "demo": demoURL}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := makeProjects(1)
			p[0].GitHub = tt.github
			p[0].Demo = tt.demo

			doc := parse(t, Projects(p))

			rows := findAll(doc, hasAttr("data-slot", "actions"))
			if tt.wantRow && len(rows) != 1 {
				t.Fatalf("found %d action rows, want 1", len(rows))
			}
			if !tt.wantRow && len(rows) != 0 {
				t.Fatalf("found %d action rows, want 0", len(rows))
			}

			buttons := findAll(doc, hasAttrKey("data-action"))
			if len(buttons) != len(tt.wantActions) {
				t.Fatalf("found %d buttons, want %d", len(buttons), len(tt.wantActions))
			}

			for _, b := range buttons {
				action, _ := attr(b, "data-action")
				wantHref, ok := tt.wantActions[action]
				if !ok {
					t.Errorf("unexpected button %q", action)
					continue
				}
				if href, _ := attr(b, "href"); href != wantHref {
					t.Errorf("%s href = %q, want %q", action, href, wantHref)
				}
				if target, _ := attr(b, "target"); target != "_blank" {
					t.Errorf("%s target = %q, want %q", action, target, "_blank")
				}
				if rel, _ := attr(b, "rel"); rel != "noopener noreferrer" {
					t.Errorf("%s rel = %q, want %q", action, rel, "noopener noreferrer")
				}
				wantLabel := map[string]string{"code": "Code", "demo": "Demo"}[action]
				if got := text(b); got != wantLabel {
					t.Errorf("button text = %q, want %q", got, wantLabel)
				}
			}
		})
	}
}

func TestProjects_ButtonOrderCodeThenDemo(t *testing.T) {
	p := makeProjects(1)
	p[0].GitHub = strPtr("https://github.com/example/repo")
	p[0].Demo = strPtr("https://demo.example.com")

	buttons := findAll(parse(t, Projects(p)), hasAttrKey("data-action"))
	if len(buttons) != 2 {
		t.Fatalf("found %d buttons, want 2", len(buttons))
	}
	if text(buttons[0]) != "Code" || text(buttons[1]) != "Demo" {
		t.Errorf("button order = [%q %q], want [Code Demo]", text(buttons[0]), text(buttons[1]))
	}
}

func TestProjects_PreservesOrder(t *testing.T) {
	projects := content.Default().Projects
	cards := findAll(parse(t, Projects(projects)), hasAttr("data-card", "project"))

	if len(cards) != len(projects) {
		t.Fatalf("rendered %d cards, want %d", len(cards), len(projects))
	}
	for i, card := range cards {
		if got := headingText(card); got != projects[i].Title {
			t.Errorf("card %d title = %q, want %q", i, got, projects[i].Title)
		}
		if id, _ := attr(card, "id"); id != "project-"+projects[i].ID {
			t.Errorf("card %d id = %q, want %q", i, id, "project-"+projects[i].ID)
		}
	}
}

func TestProjects_FeaturesAndTechnologies(t *testing.T) {
	p := models.Project{
		ID:           "demo",
		Title:        "Demo",
		Technologies: []string{"Go", "chi", "gomponents"},
		Features:     []string{"first", "second"},
	}

	doc := parse(t, Projects([]models.Project{p}))

	items := findAll(doc, isTag("li"))
	if len(items) != 2 {
		t.Fatalf("found %d feature items, want 2", len(items))
	}
	for i, li := range items {
		want := bullet + p.Features[i]
		if got := text(li); got != want {
			t.Errorf("feature %d = %q, want %q", i, got, want)
		}
	}

	badges := findAll(doc, hasAttrKey("data-badge"))
	if len(badges) != len(p.Technologies) {
		t.Fatalf("found %d badges, want %d", len(badges), len(p.Technologies))
	}
	for i, b := range badges {
		if got := text(b); got != p.Technologies[i] {
			t.Errorf("badge %d = %q, want %q", i, got, p.Technologies[i])
		}
	}
}

func TestProjects_BulletGlyphIsClean(t *testing.T) {
	out := render(t, Projects(content.Default().Projects))
	if !strings.Contains(out, "•") {
		t.Error("expected bullet glyph in output")
	}
	if strings.Contains(out, "â€¢") {
		t.Error("output contains mis-encoded bullet")
	}
}

func TestProjects_EscapesText(t *testing.T) {
	p := makeProjects(1)
	p[0].Title = `<script>alert("x")</script>`

	out := render(t, Projects(p))
	if strings.Contains(out, "<script>") {
		t.Errorf("title was not escaped: %s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped title in output")
	}
}
