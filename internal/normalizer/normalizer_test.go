package normalizer

import (
	"reflect"
	"testing"

	"resumeforge/pkg/models"
)

func TestNormalizeEmptyDocument(t *testing.T) {
	doc := New().Normalize(models.RawResumeDocument{})

	if doc.PersonalInfo.FullName != "" || doc.Summary != "" {
		t.Errorf("expected empty personal info, got %+v summary %q", doc.PersonalInfo, doc.Summary)
	}

	checks := map[string]interface{}{
		"experience":     doc.Experience,
		"education":      doc.Education,
		"skills":         doc.Skills,
		"projects":       doc.Projects,
		"certifications": doc.Certifications,
		"languages":      doc.Languages,
		"awards":         doc.Awards,
	}
	for name, value := range checks {
		v := reflect.ValueOf(value)
		if v.IsNil() {
			t.Errorf("%s slice is nil, want empty", name)
		}
		if v.Len() != 0 {
			t.Errorf("%s has %d entries, want 0", name, v.Len())
		}
	}
}

func TestNormalizePersonalInfo(t *testing.T) {
	doc := New().Normalize(models.RawResumeDocument{
		PersonalInfo: &models.RawPersonalInfo{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Phone:   "+1 555 0100",
			Address: "Berlin, Germany",
			Summary: "Seasoned backend engineer.",
		},
	})

	if doc.PersonalInfo.FullName != "Jane Doe" {
		t.Errorf("FullName = %q, want %q", doc.PersonalInfo.FullName, "Jane Doe")
	}
	if doc.PersonalInfo.Location != "Berlin, Germany" {
		t.Errorf("Location = %q, want address mapped through", doc.PersonalInfo.Location)
	}
	if doc.Summary != "Seasoned backend engineer." {
		t.Errorf("Summary = %q, want summary hoisted to top level", doc.Summary)
	}
}

func TestNormalizeExperienceDates(t *testing.T) {
	tests := []struct {
		name      string
		dates     string
		wantStart string
		wantEnd   string
		wantCurr  bool
	}{
		{"closed range", "Jan 2020 – Dec 2022", "Jan 2020", "Dec 2022", false},
		{"ongoing role", "Mar 2021 – Present", "Mar 2021", "Present", true},
		{"start only", "2019", "2019", "Present", false},
		{"empty", "", "", "Present", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New().Normalize(models.RawResumeDocument{
				WorkExperience: []models.RawExperience{{Company: "Acme", Dates: tt.dates}},
			})
			exp := doc.Experience[0]
			if exp.StartDate != tt.wantStart {
				t.Errorf("StartDate = %q, want %q", exp.StartDate, tt.wantStart)
			}
			if exp.EndDate != tt.wantEnd {
				t.Errorf("EndDate = %q, want %q", exp.EndDate, tt.wantEnd)
			}
			if exp.Current != tt.wantCurr {
				t.Errorf("Current = %v, want %v", exp.Current, tt.wantCurr)
			}
		})
	}
}

func TestNormalizeEducationDatesStayEmpty(t *testing.T) {
	doc := New().Normalize(models.RawResumeDocument{
		Education: []models.RawEducation{{Institution: "MIT", Degree: "BSc", Dates: "2015"}},
	})
	edu := doc.Education[0]
	if edu.StartDate != "2015" {
		t.Errorf("StartDate = %q, want %q", edu.StartDate, "2015")
	}
	if edu.EndDate != "" {
		t.Errorf("EndDate = %q, want empty for education without a range", edu.EndDate)
	}
}

func TestNormalizeResponsibilitiesSingleBullet(t *testing.T) {
	doc := New().Normalize(models.RawResumeDocument{
		WorkExperience: []models.RawExperience{{
			Responsibilities: "Built services. Led migrations.",
		}},
	})
	got := doc.Experience[0].Description
	want := []string{"Built services. Led migrations."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Description = %v, want single-element blob %v", got, want)
	}
}

func TestNormalizeSkillsOrderAndDefaults(t *testing.T) {
	doc := New().Normalize(models.RawResumeDocument{
		Skills: &models.RawSkills{
			Technical: []string{"Go", "Redis"},
			Soft:      []string{"Mentoring"},
		},
	})

	if len(doc.Skills) != 3 {
		t.Fatalf("got %d skills, want 3", len(doc.Skills))
	}

	wantOrder := []struct {
		name     string
		category string
	}{
		{"Go", "Technical"},
		{"Redis", "Technical"},
		{"Mentoring", "Soft"},
	}
	for i, want := range wantOrder {
		skill := doc.Skills[i]
		if skill.Name != want.name || skill.Category != want.category {
			t.Errorf("skills[%d] = %s/%s, want %s/%s", i, skill.Name, skill.Category, want.name, want.category)
		}
		if skill.Level != models.SkillLevelIntermediate {
			t.Errorf("skills[%d].Level = %q, want Intermediate default", i, skill.Level)
		}
	}
}

func TestNormalizeCertificationDetailsBecomeDate(t *testing.T) {
	doc := New().Normalize(models.RawResumeDocument{
		Certifications: []models.RawCertification{{
			Name:    "CKA",
			Issuer:  "CNCF",
			Details: "June 2023",
		}},
	})
	cert := doc.Certifications[0]
	if cert.Date != "June 2023" {
		t.Errorf("Date = %q, want details string mapped through", cert.Date)
	}
}

func TestNormalizeAssignsUniqueIDs(t *testing.T) {
	doc := New().Normalize(models.RawResumeDocument{
		WorkExperience: []models.RawExperience{{Company: "A"}, {Company: "B"}},
		Education:      []models.RawEducation{{Institution: "X"}},
		Skills:         &models.RawSkills{Technical: []string{"Go", "SQL"}},
	})

	if doc.Experience[0].ID != "exp-1" || doc.Experience[1].ID != "exp-2" {
		t.Errorf("experience IDs = %q, %q", doc.Experience[0].ID, doc.Experience[1].ID)
	}
	if doc.Education[0].ID != "edu-1" {
		t.Errorf("education ID = %q", doc.Education[0].ID)
	}

	seen := make(map[string]bool)
	for _, skill := range doc.Skills {
		if seen[skill.ID] {
			t.Errorf("duplicate skill ID %q", skill.ID)
		}
		seen[skill.ID] = true
	}
}

func TestNormalizeWithIDFunc(t *testing.T) {
	n := New(WithIDFunc(func(kind string) string { return kind + "-fixed" }))
	doc := n.Normalize(models.RawResumeDocument{
		WorkExperience: []models.RawExperience{{Company: "A"}},
	})
	if doc.Experience[0].ID != "exp-fixed" {
		t.Errorf("ID = %q, want custom generator output", doc.Experience[0].ID)
	}
}

func TestNormalizeLanguagesAndAwardsPassThrough(t *testing.T) {
	langs := []models.Language{{Name: "German", Proficiency: "Fluent"}}
	awards := []models.Award{{Name: "Best Paper", Date: "2022"}}
	doc := New().Normalize(models.RawResumeDocument{Languages: langs, Awards: awards})

	if !reflect.DeepEqual(doc.Languages, langs) {
		t.Errorf("Languages = %v, want pass-through", doc.Languages)
	}
	if !reflect.DeepEqual(doc.Awards, awards) {
		t.Errorf("Awards = %v, want pass-through", doc.Awards)
	}
}

func TestSplitDates(t *testing.T) {
	tests := []struct {
		in        string
		wantStart string
		wantEnd   string
	}{
		{"Jan 2020 – Dec 2022", "Jan 2020", "Dec 2022"},
		{"Jan 2020–Dec 2022", "Jan 2020", "Dec 2022"},
		{"Jan 2020", "Jan 2020", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		start, end := splitDates(tt.in)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("splitDates(%q) = %q, %q, want %q, %q", tt.in, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}
