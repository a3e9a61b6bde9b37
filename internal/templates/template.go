// Package templates holds the fixed catalog of resume templates and renders
// canonical resume documents into standalone HTML pages. Each template pairs
// display metadata with an html/template document; rendering is pure string
// construction with contextual escaping of every user-supplied field.
package templates

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"resumeforge/pkg/models"
)

// ErrTemplateNotFound is returned when a template id is not in the catalog
var ErrTemplateNotFound = errors.New("template not found")

// Category buckets templates for catalog filtering
type Category string

const (
	CategoryProfessional Category = "professional"
	CategoryCreative     Category = "creative"
	CategoryTechnical    Category = "technical"
	CategoryExecutive    Category = "executive"
	CategoryMinimal      Category = "minimal"
)

// Layout describes a template's column structure
type Layout string

const (
	LayoutSingleColumn Layout = "single-column"
	LayoutTwoColumn    Layout = "two-column"
	LayoutSidebar      Layout = "sidebar"
)

// Palette is a template's five named colors
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
	Background string `json:"background"`
}

// FontPair names the heading and body typefaces
type FontPair struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Descriptor is a template's catalog metadata. It is display/filtering
// information only; the renderer hardcodes its own use of these values.
type Descriptor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Preview     string   `json:"preview"`
	Colors      Palette  `json:"colors"`
	Fonts       FontPair `json:"fonts"`
	Layout      Layout   `json:"layout"`
}

// Template is a catalog entry: descriptor plus its parsed HTML document
type Template struct {
	Descriptor
	tmpl *template.Template
}

// Render produces a complete standalone HTML document for the given resume.
// Given the same document the output is byte-identical.
func (t *Template) Render(doc models.ResumeDocument) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, newResumeView(doc)); err != nil {
		return "", fmt.Errorf("render template %s: %w", t.ID, err)
	}
	return buf.String(), nil
}

func mustTemplate(desc Descriptor, text string) *Template {
	return &Template{
		Descriptor: desc,
		tmpl:       template.Must(template.New(desc.ID).Funcs(viewFuncs).Parse(text)),
	}
}
