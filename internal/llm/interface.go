package llm

import (
	"context"

	"resumeforge/pkg/models"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// ParseResume extracts a structured resume from free-form text
	ParseResume(ctx context.Context, text string) (*models.RawResumeDocument, error)

	// EnhanceResume rewrites resume text into a structured resume, optionally
	// tailored to a job description
	EnhanceResume(ctx context.Context, text, jobDescription string) (*models.RawResumeDocument, error)

	// ScoreResume evaluates a resume against a job description
	ScoreResume(ctx context.Context, doc *models.ResumeDocument, jobDescription string) (*models.ATSAnalysis, error)

	// IsHealthy checks if the LLM provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the LLM provider
	GetProviderName() string
}
