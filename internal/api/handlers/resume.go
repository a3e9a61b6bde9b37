package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resumeforge/internal/api/validation"
	"resumeforge/internal/background"
	"resumeforge/internal/config"
	"resumeforge/internal/exporter"
	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/internal/normalizer"
	"resumeforge/internal/templates"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

var resumeValidator = validator.New()

func init() {
	if err := validation.RegisterResumeValidators(resumeValidator); err != nil {
		panic(err)
	}
}

func errorJSON(c echo.Context, code int, errCode, message, requestID string) error {
	return c.JSON(code, models.ErrorResponse{
		Error:     errCode,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

func renderErrorResponse(c echo.Context, err error, requestID string) error {
	switch {
	case errors.Is(err, exporter.ErrTemplateNotFound):
		return errorJSON(c, http.StatusNotFound, "template_not_found", err.Error(), requestID)
	case errors.Is(err, exporter.ErrNoResume):
		return errorJSON(c, http.StatusBadRequest, "no_resume_provided", "Provide a resume or raw document to render", requestID)
	case errors.Is(err, exporter.ErrRender):
		return errorJSON(c, http.StatusUnprocessableEntity, "render_error", err.Error(), requestID)
	case errors.Is(err, exporter.ErrExport):
		return errorJSON(c, http.StatusServiceUnavailable, "export_error", err.Error(), requestID)
	default:
		return errorJSON(c, http.StatusInternalServerError, "internal_error", err.Error(), requestID)
	}
}

// RenderResumeHandler renders a resume document with a catalog template and
// returns the standalone HTML page
func RenderResumeHandler(reg *templates.Registry, norm *normalizer.Normalizer) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		c.Set("request_id", requestID)
		logger := logging.LogWithRequestID(requestID)

		var req models.RenderResumeRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format", requestID)
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
		}

		doc, err := exporter.ResolveDocument(&req, norm)
		if err != nil {
			return renderErrorResponse(c, err, requestID)
		}

		html, err := exporter.BuildHTML(c.Request().Context(), reg, req.TemplateID, doc)
		if err != nil {
			return renderErrorResponse(c, err, requestID)
		}

		logger.Info("Resume rendered", map[string]interface{}{
			"template_id": req.TemplateID,
			"html_length": len(html),
		})

		return c.JSON(http.StatusOK, models.RenderResumeResponse{
			Success:    true,
			TemplateID: req.TemplateID,
			HTML:       html,
			RequestID:  requestID,
		})
	}
}

// ExportResumeHandler renders a resume and appends the client-side PDF
// conversion script, returning print-ready HTML plus the suggested filename
func ExportResumeHandler(cfg *config.Config, reg *templates.Registry, norm *normalizer.Normalizer) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		c.Set("request_id", requestID)
		logger := logging.LogWithRequestID(requestID)

		var req models.ExportResumeRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format", requestID)
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
		}

		doc, err := exporter.ResolveDocument(&models.RenderResumeRequest{
			TemplateID: req.TemplateID,
			Resume:     req.Resume,
			Raw:        req.Raw,
		}, norm)
		if err != nil {
			return renderErrorResponse(c, err, requestID)
		}

		html, filename, err := exporter.ExportPDF(c.Request().Context(), cfg, reg, req.TemplateID, doc, req.Filename)
		if err != nil {
			return renderErrorResponse(c, err, requestID)
		}

		logger.Info("Resume export prepared", map[string]interface{}{
			"template_id": req.TemplateID,
			"filename":    filename,
		})

		return c.JSON(http.StatusOK, models.ExportResumeResponse{
			Success:    true,
			TemplateID: req.TemplateID,
			HTML:       html,
			Filename:   filename,
			RequestID:  requestID,
		})
	}
}

// EnhanceResumeHandler accepts raw resume text for background AI enhancement
// and immediately returns 202 with a process id for polling
func EnhanceResumeHandler(taskManager background.TaskManager, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		var req models.EnhanceResumeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.CreateAsyncErrorResponse(
				"invalid_request", "Invalid request format"))
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.CreateAsyncErrorResponse(
				"validation_failed", err.Error()))
		}

		processID := utils.GenerateEnhanceProcessID()

		if err := taskManager.SubmitEnhanceTask(c.Request().Context(), processID, req, llmManager); err != nil {
			logger.Error("Failed to submit enhance task", map[string]interface{}{
				"process_id": processID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusInternalServerError, models.CreateAsyncErrorResponse(
				"task_submission_failed", "Unable to queue enhancement task", processID))
		}

		logger.Info("Enhance task accepted", map[string]interface{}{
			"process_id":          processID,
			"text_length":         len(req.Text),
			"has_job_description": req.JobDescription != "",
		})

		return c.JSON(http.StatusAccepted, models.CreateAsyncEnhanceResponse(processID))
	}
}

// ParseResumeResponse carries a parsed resume in both shapes
type ParseResumeResponse struct {
	Success   bool                      `json:"success"`
	Raw       *models.RawResumeDocument `json:"raw,omitempty"`
	Resume    *models.ResumeDocument    `json:"resume,omitempty"`
	Error     string                    `json:"error,omitempty"`
	RequestID string                    `json:"request_id"`
}

// ParseResumeHandler extracts a structured resume from free-form text using
// the AI collaborator, synchronously, and returns both the raw output and its
// normalized canonical form
func ParseResumeHandler(llmManager *llm.Manager, norm *normalizer.Normalizer) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		c.Set("request_id", requestID)
		logger := logging.LogWithRequestID(requestID)

		var req models.EnhanceResumeRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format", requestID)
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
		}

		raw, err := llmManager.ParseResume(c.Request().Context(), req.Text)
		if err != nil {
			logger.Error("Resume parsing failed", map[string]interface{}{
				"error": err.Error(),
			})
			return c.JSON(http.StatusBadGateway, ParseResumeResponse{
				Success:   false,
				Error:     err.Error(),
				RequestID: requestID,
			})
		}

		doc := norm.Normalize(*raw)

		logger.Info("Resume parsed", map[string]interface{}{
			"text_length": len(req.Text),
		})

		return c.JSON(http.StatusOK, ParseResumeResponse{
			Success:   true,
			Raw:       raw,
			Resume:    &doc,
			RequestID: requestID,
		})
	}
}

// ScoreResumeHandler scores a canonical resume against a job description using
// the AI collaborator, synchronously
func ScoreResumeHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		c.Set("request_id", requestID)
		logger := logging.LogWithRequestID(requestID)

		var req models.ScoreResumeRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format", requestID)
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
		}

		analysis, err := llmManager.ScoreResume(c.Request().Context(), req.Resume, req.JobDescription)
		if err != nil {
			logger.Error("Resume scoring failed", map[string]interface{}{
				"error": err.Error(),
			})
			return c.JSON(http.StatusBadGateway, models.ScoreResumeResponse{
				Success:   false,
				Error:     err.Error(),
				RequestID: requestID,
			})
		}

		logger.Info("Resume scored", map[string]interface{}{
			"score": analysis.Score,
		})

		return c.JSON(http.StatusOK, models.ScoreResumeResponse{
			Success:   true,
			Analysis:  analysis,
			RequestID: requestID,
		})
	}
}
