package exporter

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/internal/normalizer"
	"resumeforge/internal/templates"
	"resumeforge/pkg/models"
)

// Sentinel errors to allow precise mapping in handlers
var (
	ErrTemplateNotFound = templates.ErrTemplateNotFound
	ErrRender           = errors.New("render_error")
	ErrExport           = errors.New("export_error")
	ErrNoResume         = errors.New("no_resume_provided")
)

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// html2pdfScript is appended to exported documents so the browser can
// package the rendered page into a PDF on load. The %s placeholder is the
// script URL from configuration.
const html2pdfScript = `<script src="%s"></script>
<script>
  window.addEventListener('load', function () {
    var opt = {
      margin: 1,
      filename: document.body.getAttribute('data-export-filename'),
      image: { type: 'jpeg', quality: 0.98 },
      html2canvas: { scale: 2 },
      jsPDF: { unit: 'in', format: 'letter', orientation: 'portrait' }
    };
    html2pdf().set(opt).from(document.body).save();
  });
</script>`

// ResolveDocument picks the canonical resume from a render request,
// normalizing the raw document when no canonical one is supplied.
func ResolveDocument(req *models.RenderResumeRequest, norm *normalizer.Normalizer) (models.ResumeDocument, error) {
	switch {
	case req.Resume != nil:
		doc := *req.Resume
		doc.EnsureLists()
		return doc, nil
	case req.Raw != nil:
		return norm.Normalize(*req.Raw), nil
	default:
		return models.ResumeDocument{}, ErrNoResume
	}
}

// BuildHTML renders a resume document with the named template.
func BuildHTML(_ context.Context, reg *templates.Registry, templateID string, doc models.ResumeDocument) (string, error) {
	logger := logging.GetGlobalLogger()

	tmpl, err := reg.GetByID(templateID)
	if err != nil {
		return "", err
	}

	html, err := tmpl.Render(doc)
	if err != nil {
		logger.Error("Failed to render resume HTML", map[string]interface{}{
			"template_id": templateID,
			"error":       err.Error(),
		})
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return html, nil
}

// ExportPDF renders a resume and embeds the client-side PDF packaging
// script. Returns the export HTML and the resolved filename.
func ExportPDF(ctx context.Context, cfg *config.Config, reg *templates.Registry, templateID string, doc models.ResumeDocument, filename string) (string, string, error) {
	if cfg.Export.ScriptURL == "" {
		return "", "", fmt.Errorf("%w: export script URL is not configured", ErrExport)
	}

	html, err := BuildHTML(ctx, reg, templateID, doc)
	if err != nil {
		return "", "", err
	}

	name := SanitizeFilename(filename)
	if name == "" {
		name = SanitizeFilename(cfg.Export.DefaultFilename)
	}
	if name == "" {
		name = DefaultFilename(time.Now())
	}

	script := fmt.Sprintf(html2pdfScript, cfg.Export.ScriptURL)
	page := strings.Replace(html, "<body>", fmt.Sprintf("<body data-export-filename=%q>", name), 1)
	if idx := strings.LastIndex(page, "</body>"); idx >= 0 {
		page = page[:idx] + script + "\n" + page[idx:]
	} else {
		page += script
	}
	return page, name, nil
}

// SanitizeFilename strips unsafe characters and enforces a .pdf suffix.
// Returns "" when nothing usable remains.
func SanitizeFilename(filename string) string {
	name := filenameSanitizer.ReplaceAllString(strings.TrimSpace(filename), "-")
	name = strings.Trim(name, "-.")
	if name == "" {
		return ""
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}

// DefaultFilename is the date-stamped name used when the caller does not
// supply one.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("resume-%s.pdf", now.Format("2006-01-02"))
}
