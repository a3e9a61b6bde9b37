package templates

var modernProfessional = mustTemplate(Descriptor{
	ID:          "modern-professional",
	Name:        "Modern Professional",
	Description: "Clean, modern design perfect for corporate roles",
	Category:    CategoryProfessional,
	Preview:     "/templates/modern-professional-preview.png",
	Colors: Palette{
		Primary:    "#2563eb",
		Secondary:  "#64748b",
		Accent:     "#0ea5e9",
		Text:       "#1e293b",
		Background: "#ffffff",
	},
	Fonts:  FontPair{Heading: "Inter", Body: "Inter"},
	Layout: LayoutTwoColumn,
}, modernProfessionalHTML)

const modernProfessionalHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Personal.FullName}} - Resume</title>
  <link href="https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap" rel="stylesheet">
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    @media print {
      body {
        -webkit-print-color-adjust: exact;
        print-color-adjust: exact;
      }
      .container {
        inline-size: 8.5in;
        block-size: 11in;
        margin: 0;
        padding: 0;
      }
    }
    body {
      font-family: 'Inter', sans-serif;
      line-height: 1.6;
      color: #1e293b;
      background: #ffffff;
    }
    .container {
      max-inline-size: 8.5in;
      margin: 0 auto;
      background: white;
      display: grid;
      grid-template-columns: 1fr 2fr;
      min-block-size: 11in;
    }
    .sidebar {
      background: #f8fafc;
      padding: 2rem 1.5rem;
      border-inline-end: 3px solid #2563eb;
    }
    .main-content {
      padding: 2rem 1.5rem;
    }
    .header {
      text-align: center;
      margin-block-end: 2rem;
    }
    .name {
      font-size: 2rem;
      font-weight: 700;
      color: #2563eb;
      margin-block-end: 0.5rem;
    }
    .contact-info {
      font-size: 0.9rem;
      color: #64748b;
      line-height: 1.4;
    }
    .section {
      margin-block-end: 2rem;
    }
    .section-title {
      font-size: 1.1rem;
      font-weight: 600;
      color: #2563eb;
      margin-block-end: 1rem;
      text-transform: uppercase;
      letter-spacing: 0.5px;
      border-block-end: 2px solid #e2e8f0;
      padding-block-end: 0.5rem;
    }
    .experience-item, .education-item, .project-item {
      margin-block-end: 1.5rem;
    }
    .item-header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      margin-block-end: 0.5rem;
    }
    .item-title {
      font-weight: 600;
      color: #1e293b;
    }
    .item-company {
      color: #2563eb;
      font-weight: 500;
    }
    .item-date {
      color: #64748b;
      font-size: 0.9rem;
      font-weight: 500;
    }
    .item-description {
      color: #475569;
      margin-block-start: 0.5rem;
    }
    .item-description ul {
      padding-inline-start: 1.2rem;
    }
    .item-description li {
      margin-block-end: 0.3rem;
    }
    .skills-grid {
      display: grid;
      gap: 1.5rem;
    }
    .skill-category {
      margin-block-end: 1rem;
    }
    .skill-category-title {
      font-size: 0.9rem;
      font-weight: 600;
      color: #2563eb;
      margin-block-end: 0.5rem;
      text-transform: uppercase;
      letter-spacing: 0.5px;
    }
    .skill-items {
      display: flex;
      flex-wrap: wrap;
      gap: 0.5rem;
    }
    .skill-item {
      background: #e2e8f0;
      padding: 0.4rem 0.8rem;
      border-radius: 0.5rem;
      font-size: 0.9rem;
      color: #475569;
      text-align: center;
    }
    .summary {
      color: #475569;
      font-size: 0.95rem;
      line-height: 1.7;
    }
    .contact-item {
      margin-block-end: 0.8rem;
      display: flex;
      align-items: center;
      gap: 0.5rem;
    }
    .contact-label {
      font-weight: 500;
      color: #2563eb;
      min-inline-size: 60px;
    }
    .technologies {
      display: flex;
      flex-wrap: wrap;
      gap: 0.3rem;
      margin-block-start: 0.5rem;
    }
    .tech-tag {
      background: #dbeafe;
      color: #1d4ed8;
      padding: 0.2rem 0.5rem;
      border-radius: 0.3rem;
      font-size: 0.8rem;
    }
    .language-item {
      margin-block-end: 0.5rem;
      color: #475569;
      font-size: 0.9rem;
    }
    .award-item {
      margin-block-end: 1rem;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="sidebar">
      <div class="header">
        <h1 class="name">{{.Personal.FullName}}</h1>
        <div class="contact-info">
          <div class="contact-item">
            <span class="contact-label">Email:</span>
            <span>{{.Personal.Email}}</span>
          </div>
          <div class="contact-item">
            <span class="contact-label">Phone:</span>
            <span>{{.Personal.Phone}}</span>
          </div>
          <div class="contact-item">
            <span class="contact-label">Location:</span>
            <span>{{.Personal.Location}}</span>
          </div>
          {{if .Personal.LinkedIn}}
          <div class="contact-item">
            <span class="contact-label">LinkedIn:</span>
            <span>{{.Personal.LinkedIn}}</span>
          </div>
          {{end}}
          {{if .Personal.GitHub}}
          <div class="contact-item">
            <span class="contact-label">GitHub:</span>
            <span>{{.Personal.GitHub}}</span>
          </div>
          {{end}}
        </div>
      </div>

      {{if .Skills}}
      <div class="section">
        <h2 class="section-title">Skills</h2>
        <div class="skills-grid">
          {{range .SkillGroups}}
          <div class="skill-category">
            <h3 class="skill-category-title">{{.Category}}</h3>
            <div class="skill-items">
              {{range .Skills}}<div class="skill-item" title="{{.Level}}">{{.Name}}</div>{{end}}
            </div>
          </div>
          {{end}}
        </div>
      </div>
      {{end}}

      {{if .Education}}
      <div class="section">
        <h2 class="section-title">Education</h2>
        {{range .Education}}
        <div class="education-item">
          <div class="item-title">{{.Degree}}{{if .Field}} in {{.Field}}{{end}}</div>
          <div class="item-company">{{.Institution}}</div>
          <div class="item-date">{{.StartDate}} - {{.EndDate}}</div>
          {{if .GPA}}<div style="color: #64748b; font-size: 0.9rem;">GPA: {{.GPA}}</div>{{end}}
        </div>
        {{end}}
      </div>
      {{end}}

      {{if .Certifications}}
      <div class="section">
        <h2 class="section-title">Certifications</h2>
        {{range .Certifications}}
        <div class="education-item">
          <div class="item-title">{{.Name}}</div>
          <div class="item-company">{{.Issuer}}</div>
          <div class="item-date">{{.Date}}</div>
        </div>
        {{end}}
      </div>
      {{end}}

      {{if .Languages}}
      <div class="section">
        <h2 class="section-title">Languages</h2>
        {{range .Languages}}
        <div class="language-item">{{.Name}}{{if .Proficiency}} — {{.Proficiency}}{{end}}</div>
        {{end}}
      </div>
      {{end}}
    </div>

    <div class="main-content">
      {{if .Summary}}
      <div class="section">
        <h2 class="section-title">Professional Summary</h2>
        <div class="summary">{{.Summary}}</div>
      </div>
      {{end}}

      {{if .Experience}}
      <div class="section">
        <h2 class="section-title">Professional Experience</h2>
        {{range .Experience}}
        <div class="experience-item">
          <div class="item-header">
            <div>
              <div class="item-title">{{.Position}}</div>
              <div class="item-company">{{.Company}}</div>
            </div>
            <div class="item-date">{{.StartDate}} - {{.DisplayEnd}}</div>
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

      {{if .Projects}}
      <div class="section">
        <h2 class="section-title">Projects</h2>
        {{range .Projects}}
        <div class="project-item">
          <div class="item-header">
            <div class="item-title">{{.Name}}</div>
            <div class="item-date">{{.StartDate}}{{if .EndDate}} - {{.EndDate}}{{end}}</div>
          </div>
          <div class="item-description">{{.Description}}</div>
          <div class="technologies">
            {{range .Technologies}}<span class="tech-tag">{{.}}</span>{{end}}
          </div>
        </div>
        {{end}}
      </div>
      {{end}}

      {{if .Awards}}
      <div class="section">
        <h2 class="section-title">Awards</h2>
        {{range .Awards}}
        <div class="award-item">
          <div class="item-header">
            <div class="item-title">{{.Name}}</div>
            <div class="item-date">{{.Date}}</div>
          </div>
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
