package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// RenderResumeResponse carries the rendered HTML document
type RenderResumeResponse struct {
	Success    bool   `json:"success"`
	TemplateID string `json:"template_id"`
	HTML       string `json:"html"`
	RequestID  string `json:"request_id"`
}

// ExportResumeResponse carries print-ready HTML plus the suggested PDF filename
type ExportResumeResponse struct {
	Success    bool   `json:"success"`
	TemplateID string `json:"template_id"`
	HTML       string `json:"html"`
	Filename   string `json:"filename"`
	RequestID  string `json:"request_id"`
}

// ATSAnalysis is the AI collaborator's verdict on a resume against a job description
type ATSAnalysis struct {
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Suggestions     []string `json:"suggestions"`
}

// ScoreResumeResponse wraps an ATS analysis
type ScoreResumeResponse struct {
	Success   bool         `json:"success"`
	Analysis  *ATSAnalysis `json:"analysis,omitempty"`
	Error     string       `json:"error,omitempty"`
	RequestID string       `json:"request_id"`
}

// SavedResume is the persistence unit: a canonical document plus its template choice
type SavedResume struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	Title      string         `json:"title"`
	TemplateID string         `json:"template_id"`
	Resume     ResumeDocument `json:"resume"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
