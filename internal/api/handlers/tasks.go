package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/background"
	"resumeforge/pkg/models"
)

// GetTaskStatusHandler returns the status of a background task by process id,
// including the completion payload once the task has finished
func GetTaskStatusHandler(taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		processID := c.Param("id")
		if processID == "" {
			return c.JSON(http.StatusBadRequest, models.CreateAsyncErrorResponse(
				"invalid_process_id", "Process id is required"))
		}

		result, err := taskManager.GetTaskResult(c.Request().Context(), processID)
		if err != nil {
			if errors.Is(err, background.ErrTaskNotFound) {
				return c.JSON(http.StatusNotFound, models.CreateAsyncErrorResponse(
					"task_not_found", "No task found for the given process id", processID))
			}
			return c.JSON(http.StatusInternalServerError, models.CreateAsyncErrorResponse(
				"task_lookup_failed", err.Error(), processID))
		}

		response := models.AsyncTaskStatusResponse{
			ProcessID:      result.ProcessID,
			Status:         models.AsyncStatus(result.Status),
			Error:          result.Error,
			CreatedAt:      result.CreatedAt,
			CompletedAt:    result.CompletedAt,
			ProcessingTime: result.ProcessingTime,
			Metadata:       result.Metadata,
		}

		if data, ok := result.Data.(*background.EnhanceTaskData); ok && data != nil {
			response.Data = &models.AsyncEnhanceCompletionData{
				Raw:    data.Raw,
				Resume: data.Resume,
			}
		}

		return c.JSON(http.StatusOK, response)
	}
}
