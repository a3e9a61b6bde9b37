package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"resumeforge/internal/config"
	"resumeforge/internal/llm/processors"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// ClaudeProvider implements the LLM provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client  anthropic.Client
	config  *config.Config
	cleaner *processors.TextCleaner
	logger  logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client:  client,
		config:  cfg,
		cleaner: processors.NewTextCleaner(),
		logger:  logging.GetGlobalLogger(),
	}
}

// rawResumeSchema is the JSON shape Claude is asked to produce. It matches
// models.RawResumeDocument.
const rawResumeSchema = `{
  "Personal Information": {
    "name": "string - Full name",
    "email": "string - Email address",
    "phone": "string - Phone number",
    "address": "string - City, state or full address",
    "summary": "string - Professional summary (2-4 sentences)"
  },
  "Work Experience": [
    {
      "company": "string - Company name",
      "position": "string - Job title",
      "dates": "string - Date range, e.g. 'Jan 2020 – Present'",
      "responsibilities": "string - Key accomplishments and duties as one paragraph"
    }
  ],
  "Education": [
    {
      "institution": "string - School or university name",
      "degree": "string - Degree earned",
      "dates": "string - Date range, e.g. '2014 – 2018'"
    }
  ],
  "Skills": {
    "Technical Skills": ["array of strings"],
    "Soft Skills": ["array of strings"]
  },
  "Projects": [
    {
      "name": "string - Project name",
      "description": "string - What the project does",
      "technologies": ["array of strings"],
      "url": "string - Project URL if any"
    }
  ],
  "Certifications": [
    {
      "name": "string - Certification name",
      "issuer": "string - Issuing organization",
      "details": "string - Issue date or other details"
    }
  ]
}`

// ParseResume extracts a structured resume from free-form text using Claude
func (cp *ClaudeProvider) ParseResume(ctx context.Context, text string) (*models.RawResumeDocument, error) {
	startTime := time.Now()

	cp.logger.Info("Starting resume parsing with Claude", map[string]interface{}{
		"text_length": len(text),
		"provider":    "claude",
	})

	cleaned, err := cp.prepareInput(text)
	if err != nil {
		return nil, fmt.Errorf("failed to clean resume text: %w", err)
	}

	prompt := fmt.Sprintf(`You are a resume parser. Extract structured resume information from the provided text and return it as a JSON object with exactly this shape:

%s

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. Omit sections that have no information rather than inventing content
3. Use an en dash with spaces in date ranges, e.g. "Jan 2020 – Dec 2022", and the literal word "Present" for current roles
4. Keep responsibilities as a single paragraph per role, preserving the candidate's wording
5. Never fabricate employers, dates, degrees, or certifications that are not in the text

RESUME TEXT:
%s`, rawResumeSchema, cleaned)

	raw, err := cp.completeRawResume(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cp.logger.Info("Resume parsing completed", map[string]interface{}{
		"processing_time": time.Since(startTime).String(),
		"provider":        "claude",
	})
	return raw, nil
}

// EnhanceResume rewrites resume text into a structured resume using Claude,
// strengthening wording and optionally tailoring it to a job description.
func (cp *ClaudeProvider) EnhanceResume(ctx context.Context, text, jobDescription string) (*models.RawResumeDocument, error) {
	startTime := time.Now()

	cp.logger.Info("Starting resume enhancement with Claude", map[string]interface{}{
		"text_length":         len(text),
		"has_job_description": jobDescription != "",
		"provider":            "claude",
	})

	cleaned, err := cp.prepareInput(text)
	if err != nil {
		return nil, fmt.Errorf("failed to clean resume text: %w", err)
	}

	tailoring := ""
	if jobDescription != "" {
		tailoring = fmt.Sprintf(`

Tailor the wording toward this job description, emphasizing relevant experience and naturally working in matching keywords where the candidate genuinely has the experience:

JOB DESCRIPTION:
%s`, jobDescription)
	}

	prompt := fmt.Sprintf(`You are a professional resume writer. Rewrite the resume text below into a polished, structured resume and return it as a JSON object with exactly this shape:

%s

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. Rewrite responsibilities with strong action verbs and quantified impact where the text supports it
3. Use an en dash with spaces in date ranges, e.g. "Jan 2020 – Dec 2022", and the literal word "Present" for current roles
4. Never fabricate employers, dates, degrees, certifications, or achievements%s

RESUME TEXT:
%s`, rawResumeSchema, tailoring, cleaned)

	raw, err := cp.completeRawResume(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cp.logger.Info("Resume enhancement completed", map[string]interface{}{
		"processing_time": time.Since(startTime).String(),
		"provider":        "claude",
	})
	return raw, nil
}

// ScoreResume evaluates a resume against a job description using Claude
func (cp *ClaudeProvider) ScoreResume(ctx context.Context, doc *models.ResumeDocument, jobDescription string) (*models.ATSAnalysis, error) {
	resumeJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	prompt := fmt.Sprintf(`You are an applicant tracking system analyst. Compare the resume below against the job description and return a JSON object with exactly these fields:

{
  "score": number - Match score from 0 to 100,
  "matchedKeywords": ["array of strings - Job keywords present in the resume"],
  "missingKeywords": ["array of strings - Important job keywords absent from the resume"],
  "suggestions": ["array of strings - Concrete improvements, 3-5 items"]
}

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. Base the score on skills, experience, and qualification overlap
3. Keep suggestions specific and actionable

JOB DESCRIPTION:
%s

RESUME:
%s`, jobDescription, string(resumeJSON))

	responseText, err := cp.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var analysis models.ATSAnalysis
	if err := json.Unmarshal([]byte(responseText), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response from Claude: %w, response: %s", err, responseText)
	}

	if analysis.Score < 0 {
		analysis.Score = 0
	}
	if analysis.Score > 100 {
		analysis.Score = 100
	}

	return &analysis, nil
}

// prepareInput cleans the text and truncates it to fit token limits.
func (cp *ClaudeProvider) prepareInput(text string) (string, error) {
	cleaned, err := cp.cleaner.Clean(text)
	if err != nil {
		return "", err
	}

	maxContentLength := cp.config.LLM.MaxTokens * 3 // Rough estimation: 3 chars per token
	if len(cleaned) > maxContentLength {
		cleaned = cleaned[:maxContentLength] + "..."
		cp.logger.Debug("Resume text truncated to fit token limits", map[string]interface{}{
			"max_length": maxContentLength,
		})
	}
	return cleaned, nil
}

// completeRawResume runs a prompt and decodes the reply as a raw resume.
func (cp *ClaudeProvider) completeRawResume(ctx context.Context, prompt string) (*models.RawResumeDocument, error) {
	responseText, err := cp.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var raw models.RawResumeDocument
	if err := json.Unmarshal([]byte(responseText), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response from Claude: %w, response: %s", err, responseText)
	}
	return &raw, nil
}

// complete sends a single-message prompt to Claude and returns the stripped
// text reply.
func (cp *ClaudeProvider) complete(ctx context.Context, prompt string) (string, error) {
	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}
	if responseText == "" {
		return "", fmt.Errorf("no text content in Claude response")
	}

	// Strip markdown code fences if present
	responseText = strings.TrimSpace(responseText)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	}

	return responseText, nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.config.LLM.Model),
		MaxTokens: 500,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the LLM provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
