package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"resumeforge/internal/api/handlers"
	"resumeforge/internal/api/middleware"
	"resumeforge/internal/background"
	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/internal/normalizer"
	"resumeforge/internal/storage"
	"resumeforge/internal/templates"
)

// SetupRoutes configures all API routes and middleware
func SetupRoutes(e *echo.Echo, cfg *config.Config, reg *templates.Registry, norm *normalizer.Normalizer, store *storage.ResumeStore, llmManager *llm.Manager, taskManager background.TaskManager) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	health.GET("", handlers.HealthHandler)
	health.GET("/ready", handlers.ReadinessHandler(store, llmManager, taskManager))
	health.GET("/live", handlers.LivenessHandler)

	e.GET("/status", handlers.StatusHandler(llmManager))

	// API v1 routes
	v1 := e.Group("/api/v1")

	v1.GET("/templates", handlers.ListTemplatesHandler(reg))
	v1.GET("/templates/:id", handlers.GetTemplateHandler(reg))

	resume := v1.Group("/resume")
	resume.POST("/render", handlers.RenderResumeHandler(reg, norm))
	resume.POST("/parse", handlers.ParseResumeHandler(llmManager, norm))
	resume.POST("/export", handlers.ExportResumeHandler(cfg, reg, norm))
	resume.POST("/enhance", handlers.EnhanceResumeHandler(taskManager, llmManager))
	resume.POST("/score", handlers.ScoreResumeHandler(llmManager))

	v1.POST("/resumes", handlers.SaveResumeHandler(store))
	v1.GET("/resumes", handlers.ListResumesHandler(store))
	v1.GET("/resumes/:id", handlers.GetResumeHandler(store))
	v1.DELETE("/resumes/:id", handlers.DeleteResumeHandler(store))

	v1.GET("/tasks/:id", handlers.GetTaskStatusHandler(taskManager))

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"service": "ResumeForge",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
