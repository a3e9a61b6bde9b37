package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/templates"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// TemplateListResponse is the catalog listing payload
type TemplateListResponse struct {
	Templates []templates.Descriptor `json:"templates"`
	Count     int                    `json:"count"`
	RequestID string                 `json:"request_id"`
}

// ListTemplatesHandler returns the template catalog, optionally filtered by
// category via the ?category= query parameter
func ListTemplatesHandler(reg *templates.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		c.Set("request_id", requestID)

		var entries []*templates.Template
		if category := c.QueryParam("category"); category != "" {
			entries = reg.ByCategory(templates.Category(category))
		} else {
			entries = reg.All()
		}

		descriptors := make([]templates.Descriptor, len(entries))
		for i, entry := range entries {
			descriptors[i] = entry.Descriptor
		}

		return c.JSON(http.StatusOK, TemplateListResponse{
			Templates: descriptors,
			Count:     len(descriptors),
			RequestID: requestID,
		})
	}
}

// GetTemplateHandler returns a single template's catalog metadata
func GetTemplateHandler(reg *templates.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		c.Set("request_id", requestID)

		entry, err := reg.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, templates.ErrTemplateNotFound) {
				return c.JSON(http.StatusNotFound, models.ErrorResponse{
					Error:     "template_not_found",
					Message:   err.Error(),
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "internal_error",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, entry.Descriptor)
	}
}
