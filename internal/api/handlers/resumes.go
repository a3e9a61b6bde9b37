package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/api/validation"
	"resumeforge/internal/logging"
	"resumeforge/internal/storage"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// SavedResumeListResponse is the saved resume listing payload
type SavedResumeListResponse struct {
	Resumes   []*models.SavedResume `json:"resumes"`
	Count     int                   `json:"count"`
	RequestID string                `json:"request_id"`
}

// SaveResumeHandler persists a canonical resume document with its template choice
func SaveResumeHandler(store *storage.ResumeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		c.Set("request_id", requestID)
		logger := logging.GetGlobalLogger()

		var req models.SaveResumeRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format", requestID)
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
		}

		record := &models.SavedResume{
			// Identity is an opaque upstream header; empty means anonymous
			UserID:     c.Request().Header.Get("X-User-ID"),
			Title:      req.Title,
			TemplateID: req.TemplateID,
			Resume:     *req.Resume,
		}
		record.Resume.EnsureLists()

		if err := store.Save(c.Request().Context(), record); err != nil {
			logger.Error("Failed to save resume", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return errorJSON(c, http.StatusServiceUnavailable, "storage_error", "Unable to save resume", requestID)
		}

		logger.Info("Resume saved", map[string]interface{}{
			"request_id":  requestID,
			"resume_id":   record.ID,
			"template_id": record.TemplateID,
		})

		return c.JSON(http.StatusCreated, record)
	}
}

// ListResumesHandler returns saved resumes, most recently updated first
func ListResumesHandler(store *storage.ResumeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		c.Set("request_id", requestID)

		records, err := store.List(c.Request().Context())
		if err != nil {
			return errorJSON(c, http.StatusServiceUnavailable, "storage_error", "Unable to list resumes", requestID)
		}

		if userID := c.Request().Header.Get("X-User-ID"); userID != "" {
			filtered := records[:0]
			for _, record := range records {
				if record.UserID == userID {
					filtered = append(filtered, record)
				}
			}
			records = filtered
		}

		return c.JSON(http.StatusOK, SavedResumeListResponse{
			Resumes:   records,
			Count:     len(records),
			RequestID: requestID,
		})
	}
}

// GetResumeHandler returns a single saved resume by id
func GetResumeHandler(store *storage.ResumeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		c.Set("request_id", requestID)

		id := c.Param("id")
		if err := validation.ValidateResumeID(id); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_resume_id", err.Error(), requestID)
		}

		record, err := store.Get(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrResumeNotFound) {
				return errorJSON(c, http.StatusNotFound, "resume_not_found", err.Error(), requestID)
			}
			return errorJSON(c, http.StatusServiceUnavailable, "storage_error", "Unable to load resume", requestID)
		}

		return c.JSON(http.StatusOK, record)
	}
}

// DeleteResumeHandler removes a saved resume by id
func DeleteResumeHandler(store *storage.ResumeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		c.Set("request_id", requestID)
		logger := logging.GetGlobalLogger()

		id := c.Param("id")
		if err := validation.ValidateResumeID(id); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid_resume_id", err.Error(), requestID)
		}

		if err := store.Delete(c.Request().Context(), id); err != nil {
			if errors.Is(err, storage.ErrResumeNotFound) {
				return errorJSON(c, http.StatusNotFound, "resume_not_found", err.Error(), requestID)
			}
			return errorJSON(c, http.StatusServiceUnavailable, "storage_error", "Unable to delete resume", requestID)
		}

		logger.Info("Resume deleted", map[string]interface{}{
			"request_id": requestID,
			"resume_id":  id,
		})

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"id":         id,
			"request_id": requestID,
			"timestamp":  time.Now(),
		})
	}
}
