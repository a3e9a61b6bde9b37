package exporter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"resumeforge/internal/config"
	"resumeforge/internal/normalizer"
	"resumeforge/internal/templates"
	"resumeforge/pkg/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Export.ScriptURL = "https://cdn.example.com/html2pdf.min.js"
	return cfg
}

func testDocument() models.ResumeDocument {
	doc := models.ResumeDocument{
		PersonalInfo: models.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com"},
		Summary:      "Backend engineer.",
	}
	doc.EnsureLists()
	return doc
}

func TestResolveDocumentPrecedence(t *testing.T) {
	norm := normalizer.New()

	canonical := testDocument()
	raw := &models.RawResumeDocument{
		PersonalInfo: &models.RawPersonalInfo{Name: "Raw Name"},
	}

	doc, err := ResolveDocument(&models.RenderResumeRequest{Resume: &canonical, Raw: raw}, norm)
	if err != nil {
		t.Fatalf("ResolveDocument: %v", err)
	}
	if doc.PersonalInfo.FullName != "Jane Doe" {
		t.Errorf("canonical document should win over raw, got %q", doc.PersonalInfo.FullName)
	}

	doc, err = ResolveDocument(&models.RenderResumeRequest{Raw: raw}, norm)
	if err != nil {
		t.Fatalf("ResolveDocument raw: %v", err)
	}
	if doc.PersonalInfo.FullName != "Raw Name" {
		t.Errorf("raw document not normalized, got %q", doc.PersonalInfo.FullName)
	}
	if doc.Skills == nil {
		t.Error("normalized document has nil skills slice")
	}

	_, err = ResolveDocument(&models.RenderResumeRequest{TemplateID: "minimal-clean"}, norm)
	if !errors.Is(err, ErrNoResume) {
		t.Errorf("empty request error = %v, want ErrNoResume", err)
	}
}

func TestResolveDocumentEnsuresLists(t *testing.T) {
	canonical := models.ResumeDocument{
		PersonalInfo: models.PersonalInfo{FullName: "Jane Doe"},
	}
	doc, err := ResolveDocument(&models.RenderResumeRequest{Resume: &canonical}, normalizer.New())
	if err != nil {
		t.Fatal(err)
	}
	if doc.Experience == nil || doc.Awards == nil {
		t.Error("client-supplied document slices not initialized")
	}
}

func TestBuildHTMLUnknownTemplate(t *testing.T) {
	reg := templates.NewRegistry()
	_, err := BuildHTML(context.Background(), reg, "no-such-template", testDocument())
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("error = %v, want ErrTemplateNotFound", err)
	}
}

func TestExportPDFInjectsScriptAndFilename(t *testing.T) {
	reg := templates.NewRegistry()
	cfg := testConfig()

	page, name, err := ExportPDF(context.Background(), cfg, reg, "minimal-clean", testDocument(), "My Resume")
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}

	if name != "My-Resume.pdf" {
		t.Errorf("filename = %q, want sanitized name with .pdf suffix", name)
	}
	if !strings.Contains(page, cfg.Export.ScriptURL) {
		t.Error("export page missing the configured script URL")
	}
	if !strings.Contains(page, `data-export-filename="My-Resume.pdf"`) {
		t.Error("export page missing the filename attribute on body")
	}

	scriptIdx := strings.Index(page, cfg.Export.ScriptURL)
	bodyEnd := strings.LastIndex(page, "</body>")
	if bodyEnd >= 0 && scriptIdx > bodyEnd {
		t.Error("script injected after </body>")
	}
}

func TestExportPDFRequiresScriptURL(t *testing.T) {
	reg := templates.NewRegistry()
	cfg := testConfig()
	cfg.Export.ScriptURL = ""

	_, _, err := ExportPDF(context.Background(), cfg, reg, "minimal-clean", testDocument(), "resume.pdf")
	if !errors.Is(err, ErrExport) {
		t.Fatalf("error = %v, want ErrExport", err)
	}
}

func TestRawDocumentRenderPipeline(t *testing.T) {
	raw := &models.RawResumeDocument{
		PersonalInfo: &models.RawPersonalInfo{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Summary: "Backend engineer focused on distributed systems.",
		},
		WorkExperience: []models.RawExperience{
			{
				Company:          "Acme",
				Position:         "Engineer",
				Dates:            "Jan 2020 – Present",
				Responsibilities: "Built billing services in Go.",
			},
		},
		Skills: &models.RawSkills{Technical: []string{"Go"}},
	}

	doc, err := ResolveDocument(&models.RenderResumeRequest{Raw: raw}, normalizer.New())
	if err != nil {
		t.Fatalf("ResolveDocument: %v", err)
	}

	page, err := BuildHTML(context.Background(), templates.NewRegistry(), "modern-professional", doc)
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}

	for _, want := range []string{"Jane Doe", "Acme", "Engineer", ">Go<", "Present"} {
		if !strings.Contains(page, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
	for _, absent := range []string{">Soft<", ">Projects<", ">Certifications<", ">Education<"} {
		if strings.Contains(page, absent) {
			t.Errorf("rendered page contains %q for a section with no content", absent)
		}
	}
}

func TestExportPDFFilenameFallbacks(t *testing.T) {
	reg := templates.NewRegistry()

	cfg := testConfig()
	cfg.Export.DefaultFilename = "company-standard"
	_, name, err := ExportPDF(context.Background(), cfg, reg, "minimal-clean", testDocument(), "")
	if err != nil {
		t.Fatal(err)
	}
	if name != "company-standard.pdf" {
		t.Errorf("filename = %q, want configured default", name)
	}

	cfg.Export.DefaultFilename = ""
	_, name, err = ExportPDF(context.Background(), cfg, reg, "minimal-clean", testDocument(), "")
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultFilename(time.Now())
	if name != want {
		t.Errorf("filename = %q, want date-stamped default %q", name, want)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"My Resume", "My-Resume.pdf"},
		{"jane_doe-2024.pdf", "jane_doe-2024.pdf"},
		{"../../etc/passwd", "etc-passwd.pdf"},
		{"Resume.PDF", "Resume.PDF"},
		{"   ", ""},
		{"###", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	if got := DefaultFilename(now); got != "resume-2024-03-05.pdf" {
		t.Errorf("DefaultFilename = %q", got)
	}
}
