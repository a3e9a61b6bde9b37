package templates

var creativeDesigner = mustTemplate(Descriptor{
	ID:          "creative-designer",
	Name:        "Creative Designer",
	Description: "Bold, colorful design for creative professionals",
	Category:    CategoryCreative,
	Preview:     "/templates/creative-designer-preview.png",
	Colors: Palette{
		Primary:    "#7c3aed",
		Secondary:  "#a855f7",
		Accent:     "#ec4899",
		Text:       "#1f2937",
		Background: "#ffffff",
	},
	Fonts:  FontPair{Heading: "Poppins", Body: "Poppins"},
	Layout: LayoutSidebar,
}, creativeDesignerHTML)

const creativeDesignerHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Personal.FullName}} - Resume</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: 'Poppins', sans-serif;
      line-height: 1.6;
      color: #1f2937;
      background: #ffffff;
    }
    .container {
      max-width: 8.5in;
      margin: 0 auto;
      background: white;
      display: grid;
      grid-template-columns: 300px 1fr;
      min-height: 11in;
    }
    .sidebar {
      background: linear-gradient(135deg, #7c3aed 0%, #a855f7 50%, #ec4899 100%);
      color: white;
      padding: 2rem 1.5rem;
    }
    .main-content {
      padding: 2rem;
    }
    .profile-section {
      text-align: center;
      margin-bottom: 2rem;
    }
    .name {
      font-size: 1.8rem;
      font-weight: 700;
      margin-bottom: 0.5rem;
      line-height: 1.2;
    }
    .title {
      font-size: 1rem;
      opacity: 0.9;
      font-weight: 300;
    }
    .sidebar-section {
      margin-bottom: 2rem;
    }
    .sidebar-title {
      font-size: 1.1rem;
      font-weight: 600;
      margin-bottom: 1rem;
      padding-bottom: 0.5rem;
      border-bottom: 2px solid rgba(255, 255, 255, 0.3);
    }
    .contact-item {
      margin-bottom: 0.8rem;
      font-size: 0.9rem;
    }
    .contact-label {
      font-weight: 600;
      display: block;
      margin-bottom: 0.2rem;
    }
    .contact-value {
      opacity: 0.9;
      word-break: break-word;
    }
    .skill-item {
      background: rgba(255, 255, 255, 0.2);
      padding: 0.5rem 0.8rem;
      border-radius: 20px;
      margin-bottom: 0.5rem;
      font-size: 0.85rem;
      text-align: center;
    }
    .section {
      margin-bottom: 2rem;
    }
    .section-title {
      font-size: 1.4rem;
      font-weight: 700;
      color: #7c3aed;
      margin-bottom: 1.5rem;
      position: relative;
      padding-left: 1rem;
    }
    .section-title::before {
      content: '';
      position: absolute;
      left: 0;
      top: 50%;
      transform: translateY(-50%);
      width: 4px;
      height: 100%;
      background: linear-gradient(to bottom, #7c3aed, #ec4899);
      border-radius: 2px;
    }
    .experience-item, .project-item {
      margin-bottom: 1.8rem;
      padding-left: 1rem;
      border-left: 2px solid #f3f4f6;
    }
    .item-title {
      font-weight: 600;
      color: #1f2937;
      font-size: 1.1rem;
      margin-bottom: 0.2rem;
    }
    .item-company {
      color: #7c3aed;
      font-weight: 500;
      margin-bottom: 0.2rem;
    }
    .item-date {
      color: #6b7280;
      font-size: 0.85rem;
      margin-bottom: 0.8rem;
    }
    .item-description ul {
      padding-left: 1.2rem;
      color: #4b5563;
    }
    .item-description li {
      margin-bottom: 0.4rem;
    }
    .summary {
      color: #4b5563;
      line-height: 1.8;
    }
    .tech-tags {
      display: flex;
      flex-wrap: wrap;
      gap: 0.4rem;
      margin-top: 0.5rem;
    }
    .tech-tag {
      background: #f3e8ff;
      color: #7c3aed;
      padding: 0.2rem 0.6rem;
      border-radius: 12px;
      font-size: 0.75rem;
      font-weight: 500;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="sidebar">
      <div class="profile-section">
        <h1 class="name">{{.Personal.FullName}}</h1>
        <div class="title">Creative Professional</div>
      </div>

      <div class="sidebar-section">
        <h2 class="sidebar-title">Contact</h2>
        <div class="contact-item">
          <span class="contact-label">Email</span>
          <span class="contact-value">{{.Personal.Email}}</span>
        </div>
        <div class="contact-item">
          <span class="contact-label">Phone</span>
          <span class="contact-value">{{.Personal.Phone}}</span>
        </div>
        <div class="contact-item">
          <span class="contact-label">Location</span>
          <span class="contact-value">{{.Personal.Location}}</span>
        </div>
        {{if .Personal.LinkedIn}}
        <div class="contact-item">
          <span class="contact-label">LinkedIn</span>
          <span class="contact-value">{{.Personal.LinkedIn}}</span>
        </div>
        {{end}}
        {{if .Personal.Website}}
        <div class="contact-item">
          <span class="contact-label">Portfolio</span>
          <span class="contact-value">{{.Personal.Website}}</span>
        </div>
        {{end}}
      </div>

      {{if .Skills}}
      <div class="sidebar-section">
        <h2 class="sidebar-title">Skills</h2>
        {{range .Skills}}
        <div class="skill-item">{{.Name}}</div>
        {{end}}
      </div>
      {{end}}

      {{if .Education}}
      <div class="sidebar-section">
        <h2 class="sidebar-title">Education</h2>
        {{range .Education}}
        <div style="margin-bottom: 1rem;">
          <div style="font-weight: 600; font-size: 0.9rem;">{{.Degree}}</div>
          {{if .Field}}<div style="opacity: 0.9; font-size: 0.85rem;">{{.Field}}</div>{{end}}
          <div style="opacity: 0.9; font-size: 0.85rem;">{{.Institution}}</div>
          <div style="opacity: 0.8; font-size: 0.8rem;">{{.StartDate}} - {{.EndDate}}</div>
        </div>
        {{end}}
      </div>
      {{end}}

      {{if .Languages}}
      <div class="sidebar-section">
        <h2 class="sidebar-title">Languages</h2>
        {{range .Languages}}
        <div class="contact-item">
          <span class="contact-label">{{.Name}}</span>
          {{if .Proficiency}}<span class="contact-value">{{.Proficiency}}</span>{{end}}
        </div>
        {{end}}
      </div>
      {{end}}
    </div>

    <div class="main-content">
      {{if .Summary}}
      <div class="section">
        <h2 class="section-title">About Me</h2>
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
        <h2 class="section-title">Featured Projects</h2>
        {{range .Projects}}
        <div class="project-item">
          <div class="item-title">{{.Name}}</div>
          <div class="item-description">{{.Description}}</div>
          {{if .Technologies}}
          <div class="tech-tags">
            {{range .Technologies}}<span class="tech-tag">{{.}}</span>{{end}}
          </div>
          {{end}}
        </div>
        {{end}}
      </div>
      {{end}}

      {{if .Certifications}}
      <div class="section">
        <h2 class="section-title">Certifications</h2>
        {{range .Certifications}}
        <div class="experience-item">
          <div class="item-title">{{.Name}}</div>
          <div class="item-company">{{.Issuer}}</div>
          <div class="item-date">{{.Date}}</div>
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
