package templates

import (
	"strings"
	"testing"

	"resumeforge/pkg/models"
)

func sampleDocument() models.ResumeDocument {
	doc := models.ResumeDocument{
		PersonalInfo: models.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+1 555 0100",
			Location: "Berlin, Germany",
			LinkedIn: "linkedin.com/in/janedoe",
			GitHub:   "github.com/janedoe",
			Website:  "janedoe.dev",
		},
		Summary: "Backend engineer with a focus on reliability.",
		Experience: []models.Experience{
			{
				ID:          "exp-1",
				Company:     "Acme Corp",
				Position:    "Senior Engineer",
				StartDate:   "Jan 2020",
				EndDate:     "Dec 2022",
				Current:     true,
				Description: []string{"Led the platform team.", "Cut latency by half."},
			},
		},
		Education: []models.Education{
			{ID: "edu-1", Institution: "MIT", Degree: "BSc", Field: "Computer Science", StartDate: "2012", EndDate: "2016", GPA: "3.9"},
		},
		Skills: []models.Skill{
			{ID: "skl-1", Name: "Go", Level: models.SkillLevelExpert, Category: "Technical"},
			{ID: "skl-2", Name: "Redis", Level: models.SkillLevelAdvanced, Category: "Technical"},
			{ID: "skl-3", Name: "Mentoring", Level: models.SkillLevelAdvanced, Category: "Soft"},
		},
		Projects: []models.Project{
			{ID: "prj-1", Name: "resumeforge", Description: "Template engine.", Technologies: []string{"Go", "Echo"}, StartDate: "2023"},
		},
		Certifications: []models.Certification{
			{ID: "crt-1", Name: "CKA", Issuer: "CNCF", Date: "June 2023"},
		},
		Languages: []models.Language{{Name: "German", Proficiency: "Fluent"}},
		Awards:    []models.Award{{Name: "Best Paper", Date: "2022", Description: "Distributed tracing."}},
	}
	return doc
}

func TestRenderAllTemplatesFullDocument(t *testing.T) {
	doc := sampleDocument()

	for _, entry := range NewRegistry().All() {
		t.Run(entry.ID, func(t *testing.T) {
			html, err := entry.Render(doc)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			for _, want := range []string{
				"<!DOCTYPE html>",
				"Jane Doe",
				"jane@example.com",
				"Acme Corp",
				"MIT",
				"Go",
				"German",
				"Best Paper",
			} {
				if !strings.Contains(html, want) {
					t.Errorf("output missing %q", want)
				}
			}
		})
	}
}

func TestRenderEscapesUserContent(t *testing.T) {
	doc := sampleDocument()
	doc.PersonalInfo.FullName = `<script>alert("x")</script>`
	doc.Summary = `1 < 2 & "quotes"`

	for _, entry := range NewRegistry().All() {
		html, err := entry.Render(doc)
		if err != nil {
			t.Fatalf("%s: render failed: %v", entry.ID, err)
		}
		if strings.Contains(html, `<script>alert`) {
			t.Errorf("%s: script tag passed through unescaped", entry.ID)
		}
		if !strings.Contains(html, "&lt;script&gt;") {
			t.Errorf("%s: expected escaped script tag in output", entry.ID)
		}
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	doc := models.ResumeDocument{
		PersonalInfo: models.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com"},
	}
	doc.EnsureLists()

	for _, entry := range NewRegistry().All() {
		html, err := entry.Render(doc)
		if err != nil {
			t.Fatalf("%s: render failed: %v", entry.ID, err)
		}
		for _, heading := range []string{"Education", "Certifications", "Languages", "Awards"} {
			if strings.Contains(html, ">"+heading+"<") {
				t.Errorf("%s: %s section rendered for empty document", entry.ID, heading)
			}
		}
	}
}

func TestRenderCurrentRoleShowsPresent(t *testing.T) {
	doc := sampleDocument()
	doc.Experience[0].Current = true
	doc.Experience[0].EndDate = "Dec 2022"

	for _, entry := range NewRegistry().All() {
		html, err := entry.Render(doc)
		if err != nil {
			t.Fatalf("%s: render failed: %v", entry.ID, err)
		}
		if !strings.Contains(html, "Present") {
			t.Errorf("%s: current role does not display Present", entry.ID)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	doc := sampleDocument()
	entry, err := NewRegistry().GetByID("modern-professional")
	if err != nil {
		t.Fatal(err)
	}

	first, err := entry.Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	second, err := entry.Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("rendering the same document twice produced different output")
	}
}

func TestGroupSkillsOrder(t *testing.T) {
	skills := []models.Skill{
		{Name: "Go", Category: "Technical"},
		{Name: "Mentoring", Category: "Soft"},
		{Name: "Redis", Category: "Technical"},
	}

	groups := groupSkills(skills)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Category != "Technical" || groups[1].Category != "Soft" {
		t.Errorf("group order = %s, %s; want first-seen category order", groups[0].Category, groups[1].Category)
	}
	if got := groups[0].Names(); len(got) != 2 || got[0] != "Go" || got[1] != "Redis" {
		t.Errorf("technical names = %v, want list order preserved", got)
	}
}
