package templates

var minimalClean = mustTemplate(Descriptor{
	ID:          "minimal-clean",
	Name:        "Minimal Clean",
	Description: "Simple, distraction-free layout that lets content shine",
	Category:    CategoryMinimal,
	Preview:     "/templates/minimal-clean-preview.png",
	Colors: Palette{
		Primary:    "#000000",
		Secondary:  "#666666",
		Accent:     "#333333",
		Text:       "#000000",
		Background: "#ffffff",
	},
	Fonts:  FontPair{Heading: "Helvetica", Body: "Helvetica"},
	Layout: LayoutSingleColumn,
}, minimalCleanHTML)

const minimalCleanHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Personal.FullName}} - Resume</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: Helvetica, Arial, sans-serif;
      line-height: 1.5;
      color: #000000;
      background: #ffffff;
      font-size: 14px;
    }
    .container {
      max-width: 8.5in;
      margin: 0 auto;
      background: white;
      padding: 2.5rem;
      min-height: 11in;
    }
    .header {
      margin-bottom: 2rem;
    }
    .name {
      font-size: 2rem;
      font-weight: 300;
      margin-bottom: 0.5rem;
      letter-spacing: -0.5px;
    }
    .contact-info {
      color: #666666;
      font-size: 0.9rem;
    }
    .contact-info span {
      margin-right: 1.5rem;
    }
    .section {
      margin-bottom: 2rem;
    }
    .section-title {
      font-size: 1rem;
      font-weight: 600;
      text-transform: uppercase;
      letter-spacing: 1.5px;
      margin-bottom: 1rem;
      color: #333333;
    }
    .summary {
      color: #333333;
      line-height: 1.7;
      margin-bottom: 2rem;
    }
    .experience-item, .education-item, .project-item {
      margin-bottom: 1.5rem;
    }
    .item-row {
      display: flex;
      justify-content: space-between;
      align-items: baseline;
      margin-bottom: 0.2rem;
    }
    .item-title {
      font-weight: 600;
    }
    .item-date {
      color: #666666;
      font-size: 0.85rem;
      white-space: nowrap;
    }
    .item-company {
      color: #666666;
      margin-bottom: 0.5rem;
      font-size: 0.95rem;
    }
    .item-description ul {
      padding-left: 1.2rem;
      color: #333333;
    }
    .item-description li {
      margin-bottom: 0.3rem;
    }
    .technologies {
      color: #666666;
      font-size: 0.85rem;
      margin-top: 0.3rem;
    }
    .technologies::before {
      content: 'Technologies: ';
      font-weight: 600;
    }
    .two-column {
      display: grid;
      grid-template-columns: 1fr 1fr;
      gap: 2rem;
    }
    .skill-group {
      margin-bottom: 0.8rem;
    }
    .skill-group-title {
      font-weight: 600;
      margin-bottom: 0.2rem;
      font-size: 0.95rem;
    }
    .skill-group-items {
      color: #333333;
      font-size: 0.9rem;
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
        {{if .Personal.Website}}<span>{{.Personal.Website}}</span>{{end}}
      </div>
    </div>

    {{if .Summary}}
    <div class="summary">{{.Summary}}</div>
    {{end}}

    {{if .Experience}}
    <div class="section">
      <h2 class="section-title">Experience</h2>
      {{range .Experience}}
      <div class="experience-item">
        <div class="item-row">
          <span class="item-title">{{.Position}}</span>
          <span class="item-date">{{.StartDate}} — {{.DisplayEnd}}</span>
        </div>
        <div class="item-company">{{.Company}}</div>
        <div class="item-description">
          <ul>
            {{range .Description}}<li>{{.}}</li>{{end}}
          </ul>
        </div>
      </div>
      {{end}}
    </div>
    {{end}}

    {{if .Projects}}
    <div class="section">
      <h2 class="section-title">Projects</h2>
      {{range .Projects}}
      <div class="project-item">
        <div class="item-row">
          <span class="item-title">{{.Name}}</span>
        </div>
        <div class="item-description">{{.Description}}</div>
        {{if .Technologies}}<div class="technologies">{{join .Technologies ", "}}</div>{{end}}
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
          <div class="item-date">{{.StartDate}} — {{.EndDate}}</div>
        </div>
        {{end}}
      </div>
      {{end}}

      {{if .Skills}}
      <div class="section">
        <h2 class="section-title">Skills</h2>
        {{range .SkillGroups}}
        <div class="skill-group">
          <div class="skill-group-title">{{.Category}}</div>
          <div class="skill-group-items">{{join .Names ", "}}</div>
        </div>
        {{end}}
      </div>
      {{end}}
    </div>

    {{if .Certifications}}
    <div class="section">
      <h2 class="section-title">Certifications</h2>
      {{range .Certifications}}
      <div class="education-item">
        <div class="item-row">
          <span class="item-title">{{.Name}}</span>
          <span class="item-date">{{.Date}}</span>
        </div>
        <div class="item-company">{{.Issuer}}</div>
      </div>
      {{end}}
    </div>
    {{end}}

    {{if .Languages}}
    <div class="section">
      <h2 class="section-title">Languages</h2>
      <div class="skill-group-items">
        {{range $i, $l := .Languages}}{{if $i}}, {{end}}{{$l.Name}}{{if $l.Proficiency}} ({{$l.Proficiency}}){{end}}{{end}}
      </div>
    </div>
    {{end}}

    {{if .Awards}}
    <div class="section">
      <h2 class="section-title">Awards</h2>
      {{range .Awards}}
      <div class="education-item">
        <div class="item-row">
          <span class="item-title">{{.Name}}</span>
          <span class="item-date">{{.Date}}</span>
        </div>
        <div class="item-company">{{.Description}}</div>
      </div>
      {{end}}
    </div>
    {{end}}
  </div>
</body>
</html>
`
