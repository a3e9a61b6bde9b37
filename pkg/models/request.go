package models

// RenderResumeRequest asks for a resume to be rendered with a catalog template.
// Exactly one of Resume (already canonical) or Raw (AI collaborator output) should
// be set; when both are present the canonical document wins.
type RenderResumeRequest struct {
	TemplateID string             `json:"template_id" validate:"required,template_id"`
	Resume     *ResumeDocument    `json:"resume,omitempty"`
	Raw        *RawResumeDocument `json:"raw,omitempty"`
}

// ExportResumeRequest asks for print-ready HTML with the PDF conversion script
// appended. Filename is optional; a date-stamped default is used when empty.
type ExportResumeRequest struct {
	TemplateID string             `json:"template_id" validate:"required,template_id"`
	Resume     *ResumeDocument    `json:"resume,omitempty"`
	Raw        *RawResumeDocument `json:"raw,omitempty"`
	Filename   string             `json:"filename,omitempty"`
}

// EnhanceResumeRequest submits raw resume text for AI parsing and enhancement
type EnhanceResumeRequest struct {
	Text           string `json:"text" validate:"required"`
	JobDescription string `json:"job_description,omitempty"`
}

// ScoreResumeRequest asks the AI collaborator to score a canonical resume against
// a job description
type ScoreResumeRequest struct {
	Resume         *ResumeDocument `json:"resume" validate:"required"`
	JobDescription string          `json:"job_description" validate:"required"`
}

// SaveResumeRequest persists a canonical document together with its template choice
type SaveResumeRequest struct {
	Title      string          `json:"title" validate:"required"`
	TemplateID string          `json:"template_id" validate:"required,template_id"`
	Resume     *ResumeDocument `json:"resume" validate:"required"`
}
