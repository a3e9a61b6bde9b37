package templates

var techSpecialist = mustTemplate(Descriptor{
	ID:          "tech-specialist",
	Name:        "Tech Specialist",
	Description: "Developer-focused layout with a terminal-inspired sidebar",
	Category:    CategoryTechnical,
	Preview:     "/templates/tech-specialist-preview.png",
	Colors: Palette{
		Primary:    "#0f172a",
		Secondary:  "#475569",
		Accent:     "#06b6d4",
		Text:       "#0f172a",
		Background: "#ffffff",
	},
	Fonts:  FontPair{Heading: "JetBrains Mono", Body: "Inter"},
	Layout: LayoutTwoColumn,
}, techSpecialistHTML)

const techSpecialistHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Personal.FullName}} - Resume</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: 'Inter', sans-serif;
      line-height: 1.6;
      color: #0f172a;
      background: #ffffff;
    }
    .container {
      max-width: 8.5in;
      margin: 0 auto;
      background: white;
      display: grid;
      grid-template-columns: 280px 1fr;
      min-height: 11in;
    }
    .sidebar {
      background: #0f172a;
      color: #e2e8f0;
      padding: 2rem 1.5rem;
      font-family: 'JetBrains Mono', monospace;
    }
    .main-content {
      padding: 2rem;
    }
    .name {
      font-size: 1.6rem;
      font-weight: 700;
      color: #ffffff;
      margin-bottom: 0.3rem;
      line-height: 1.2;
    }
    .title {
      color: #06b6d4;
      font-size: 0.9rem;
      margin-bottom: 2rem;
    }
    .sidebar-section {
      margin-bottom: 2rem;
    }
    .sidebar-title {
      color: #06b6d4;
      font-size: 0.85rem;
      text-transform: uppercase;
      letter-spacing: 1px;
      margin-bottom: 1rem;
      padding-bottom: 0.4rem;
      border-bottom: 1px solid #1e293b;
    }
    .contact-item {
      margin-bottom: 0.6rem;
      font-size: 0.8rem;
      word-break: break-word;
    }
    .contact-label {
      color: #64748b;
      display: block;
      font-size: 0.7rem;
    }
    .skill-item {
      font-size: 0.8rem;
      margin-bottom: 0.4rem;
      padding-left: 1rem;
      position: relative;
    }
    .skill-item::before {
      content: '>';
      position: absolute;
      left: 0;
      color: #06b6d4;
    }
    .section {
      margin-bottom: 2rem;
    }
    .section-title {
      font-family: 'JetBrains Mono', monospace;
      font-size: 1.1rem;
      font-weight: 700;
      color: #0f172a;
      margin-bottom: 1.2rem;
    }
    .section-title::before {
      content: '// ';
      color: #06b6d4;
    }
    .summary {
      color: #475569;
      line-height: 1.7;
      padding: 1rem;
      border-left: 3px solid #06b6d4;
      background: #f8fafc;
    }
    .experience-item, .project-item {
      margin-bottom: 1.6rem;
    }
    .item-title {
      font-weight: 600;
      font-size: 1rem;
    }
    .item-company {
      color: #06b6d4;
      font-weight: 500;
      font-size: 0.9rem;
    }
    .item-date {
      color: #64748b;
      font-size: 0.8rem;
      font-family: 'JetBrains Mono', monospace;
      margin-bottom: 0.6rem;
    }
    .item-description ul {
      padding-left: 1.2rem;
      color: #475569;
      font-size: 0.9rem;
    }
    .item-description li {
      margin-bottom: 0.3rem;
    }
    .tech-tags {
      display: flex;
      flex-wrap: wrap;
      gap: 0.3rem;
      margin-top: 0.5rem;
    }
    .tech-tag {
      font-family: 'JetBrains Mono', monospace;
      background: #f1f5f9;
      color: #0f172a;
      padding: 0.15rem 0.5rem;
      border-radius: 4px;
      font-size: 0.7rem;
      border: 1px solid #e2e8f0;
    }
    .code-block {
      font-family: 'JetBrains Mono', monospace;
      background: #0f172a;
      color: #06b6d4;
      padding: 0.5rem 0.8rem;
      border-radius: 4px;
      font-size: 0.75rem;
      margin-top: 0.5rem;
      overflow-x: auto;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="sidebar">
      <h1 class="name">{{.Personal.FullName}}</h1>
      <div class="title">Software Engineer</div>

      <div class="sidebar-section">
        <h2 class="sidebar-title">Contact</h2>
        <div class="contact-item">
          <span class="contact-label">email:</span>
          {{.Personal.Email}}
        </div>
        <div class="contact-item">
          <span class="contact-label">phone:</span>
          {{.Personal.Phone}}
        </div>
        <div class="contact-item">
          <span class="contact-label">location:</span>
          {{.Personal.Location}}
        </div>
        {{if .Personal.GitHub}}
        <div class="contact-item">
          <span class="contact-label">github:</span>
          {{.Personal.GitHub}}
        </div>
        {{end}}
        {{if .Personal.LinkedIn}}
        <div class="contact-item">
          <span class="contact-label">linkedin:</span>
          {{.Personal.LinkedIn}}
        </div>
        {{end}}
      </div>

      {{if .Skills}}
      <div class="sidebar-section">
        <h2 class="sidebar-title">Tech Stack</h2>
        {{range .Skills}}
        <div class="skill-item">{{.Name}}</div>
        {{end}}
      </div>
      {{end}}

      {{if .Education}}
      <div class="sidebar-section">
        <h2 class="sidebar-title">Education</h2>
        {{range .Education}}
        <div style="margin-bottom: 1rem; font-size: 0.8rem;">
          <div style="color: #ffffff; font-weight: 600;">{{.Degree}}</div>
          {{if .Field}}<div style="color: #94a3b8;">{{.Field}}</div>{{end}}
          <div style="color: #94a3b8;">{{.Institution}}</div>
          <div style="color: #64748b; font-size: 0.75rem;">{{.StartDate}} - {{.EndDate}}</div>
        </div>
        {{end}}
      </div>
      {{end}}

      {{if .Certifications}}
      <div class="sidebar-section">
        <h2 class="sidebar-title">Certifications</h2>
        {{range .Certifications}}
        <div style="margin-bottom: 0.8rem; font-size: 0.8rem;">
          <div style="color: #ffffff;">{{.Name}}</div>
          <div style="color: #94a3b8; font-size: 0.75rem;">{{.Issuer}} / {{.Date}}</div>
        </div>
        {{end}}
      </div>
      {{end}}

      {{if .Languages}}
      <div class="sidebar-section">
        <h2 class="sidebar-title">Languages</h2>
        {{range .Languages}}
        <div class="contact-item">
          {{.Name}}{{if .Proficiency}} <span style="color: #64748b;">({{.Proficiency}})</span>{{end}}
        </div>
        {{end}}
      </div>
      {{end}}
    </div>

    <div class="main-content">
      {{if .Summary}}
      <div class="section">
        <h2 class="section-title">About</h2>
        <div class="summary">{{.Summary}}</div>
      </div>
      {{end}}

      {{if .Experience}}
      <div class="section">
        <h2 class="section-title">Experience</h2>
        {{range .Experience}}
        <div class="experience-item">
          <div class="item-title">{{.Position}}</div>
          <div class="item-company">{{.Company}}</div>
          <div class="item-date">{{.StartDate}} - {{.DisplayEnd}}</div>
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
          <div class="item-title">{{.Name}}</div>
          <div class="item-description">{{.Description}}</div>
          {{if .Technologies}}
          <div class="tech-tags">
            {{range .Technologies}}<span class="tech-tag">{{.}}</span>{{end}}
          </div>
          {{end}}
          {{if .GitHub}}
          <div class="code-block">$ git clone {{.GitHub}}</div>
          {{end}}
        </div>
        {{end}}
      </div>
      {{end}}

      {{if .Awards}}
      <div class="section">
        <h2 class="section-title">Awards</h2>
        {{range .Awards}}
        <div class="experience-item">
          <div class="item-title">{{.Name}}</div>
          <div class="item-date">{{.Date}}</div>
          <div class="item-description">{{.Description}}</div>
        </div>
        {{end}}
      </div>
      {{end}}
    </div>
  </div>
</body>
</html>
`
