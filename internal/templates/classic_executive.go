package templates

var classicExecutive = mustTemplate(Descriptor{
	ID:          "classic-executive",
	Name:        "Classic Executive",
	Description: "Traditional, elegant design for senior-level positions",
	Category:    CategoryExecutive,
	Preview:     "/templates/classic-executive-preview.png",
	Colors: Palette{
		Primary:    "#1f2937",
		Secondary:  "#6b7280",
		Accent:     "#374151",
		Text:       "#111827",
		Background: "#ffffff",
	},
	Fonts:  FontPair{Heading: "Georgia", Body: "Georgia"},
	Layout: LayoutSingleColumn,
}, classicExecutiveHTML)

const classicExecutiveHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Personal.FullName}} - Resume</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: Georgia, serif;
      line-height: 1.6;
      color: #111827;
      background: #ffffff;
    }
    .container {
      max-width: 8.5in;
      margin: 0 auto;
      background: white;
      padding: 2rem;
      min-height: 11in;
    }
    .header {
      text-align: center;
      margin-bottom: 2.5rem;
      border-bottom: 3px solid #1f2937;
      padding-bottom: 1.5rem;
    }
    .name {
      font-size: 2.5rem;
      font-weight: 700;
      color: #1f2937;
      margin-bottom: 0.5rem;
      letter-spacing: 1px;
    }
    .contact-info {
      font-size: 1rem;
      color: #6b7280;
      display: flex;
      justify-content: center;
      gap: 2rem;
      flex-wrap: wrap;
    }
    .section {
      margin-bottom: 2.5rem;
    }
    .section-title {
      font-size: 1.3rem;
      font-weight: 700;
      color: #1f2937;
      margin-bottom: 1.5rem;
      text-transform: uppercase;
      letter-spacing: 1px;
      border-bottom: 2px solid #e5e7eb;
      padding-bottom: 0.5rem;
    }
    .experience-item, .education-item, .project-item {
      margin-bottom: 2rem;
    }
    .item-header {
      margin-bottom: 0.8rem;
    }
    .item-title {
      font-weight: 700;
      color: #1f2937;
      font-size: 1.1rem;
      margin-bottom: 0.3rem;
    }
    .item-company {
      color: #374151;
      font-weight: 400;
      font-style: italic;
      margin-bottom: 0.3rem;
    }
    .item-date {
      color: #6b7280;
      font-size: 0.95rem;
    }
    .item-description {
      color: #374151;
      margin-top: 0.8rem;
      text-align: justify;
    }
    .item-description ul {
      padding-left: 1.5rem;
    }
    .item-description li {
      margin-bottom: 0.5rem;
    }
    .skills-list {
      display: flex;
      flex-wrap: wrap;
      gap: 1rem;
    }
    .skill-category {
      flex: 1;
      min-width: 200px;
    }
    .skill-category-title {
      font-weight: 700;
      color: #1f2937;
      margin-bottom: 0.5rem;
      font-size: 1rem;
    }
    .skill-items {
      color: #374151;
      line-height: 1.8;
    }
    .summary {
      color: #374151;
      font-size: 1rem;
      line-height: 1.8;
      text-align: justify;
      font-style: italic;
    }
    .two-column {
      display: grid;
      grid-template-columns: 1fr 1fr;
      gap: 2rem;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 class="name">{{.Personal.FullName}}</h1>
      <div class="contact-info">
        <span>{{.Personal.Email}}</span>
        <span>{{.Personal.Phone}}</span>
        <span>{{.Personal.Location}}</span>
        {{if .Personal.LinkedIn}}<span>{{.Personal.LinkedIn}}</span>{{end}}
      </div>
    </div>

    {{if .Summary}}
    <div class="section">
      <h2 class="section-title">Executive Summary</h2>
      <div class="summary">{{.Summary}}</div>
    </div>
    {{end}}

    {{if .Experience}}
    <div class="section">
      <h2 class="section-title">Professional Experience</h2>
      {{range .Experience}}
      <div class="experience-item">
        <div class="item-header">
          <div class="item-title">{{.Position}}</div>
          <div class="item-company">{{.Company}} &bull; {{.StartDate}} - {{.DisplayEnd}}</div>
        </div>
        <div class="item-description">
          <ul>
            {{range .Description}}<li>{{.}}</li>{{end}}
          </ul>
        </div>
      </div>
      {{end}}
    </div>
    {{end}}

    <div class="two-column">
      {{if .Education}}
      <div class="section">
        <h2 class="section-title">Education</h2>
        {{range .Education}}
        <div class="education-item">
          <div class="item-title">{{.Degree}}</div>
          {{if .Field}}<div class="item-company">{{.Field}}</div>{{end}}
          <div class="item-company">{{.Institution}}</div>
          <div class="item-date">{{.StartDate}} - {{.EndDate}}</div>
          {{if .GPA}}<div style="color: #6b7280; font-size: 0.9rem; margin-top: 0.3rem;">GPA: {{.GPA}}</div>{{end}}
          {{if .Honors}}<div class="item-date">{{join .Honors ", "}}</div>{{end}}
        </div>
        {{end}}
      </div>
      {{end}}

      {{if .Skills}}
      <div class="section">
        <h2 class="section-title">Core Competencies</h2>
        <div class="skills-list">
          {{range .SkillGroups}}
          <div class="skill-category">
            <div class="skill-category-title">{{.Category}}</div>
            <div class="skill-items">{{join .Names " • "}}</div>
          </div>
          {{end}}
        </div>
      </div>
      {{end}}
    </div>

    {{if .Certifications}}
    <div class="section">
      <h2 class="section-title">Professional Certifications</h2>
      {{range .Certifications}}
      <div class="education-item">
        <div class="item-title">{{.Name}}</div>
        <div class="item-company">{{.Issuer}} &bull; {{.Date}}</div>
      </div>
      {{end}}
    </div>
    {{end}}

    {{if .Languages}}
    <div class="section">
      <h2 class="section-title">Languages</h2>
      <div class="skill-items">
        {{range $i, $l := .Languages}}{{if $i}} &bull; {{end}}{{$l.Name}}{{if $l.Proficiency}} ({{$l.Proficiency}}){{end}}{{end}}
      </div>
    </div>
    {{end}}

    {{if .Awards}}
    <div class="section">
      <h2 class="section-title">Honors &amp; Awards</h2>
      {{range .Awards}}
      <div class="education-item">
        <div class="item-title">{{.Name}}</div>
        <div class="item-company">{{.Date}}</div>
        <div class="item-description">{{.Description}}</div>
      </div>
      {{end}}
    </div>
    {{end}}
  </div>
</body>
</html>
`
