package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// llmPaths are routes backed by LLM calls and get the longer timeout
var llmPaths = []string{
	"/api/v1/resume/parse",
	"/api/v1/resume/enhance",
	"/api/v1/resume/score",
}

// TimeoutConfig returns timeout middleware with the specified duration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies the default timeout to most routes and a
// longer one to LLM-backed routes, whose upstream calls routinely take longer
// than a normal request.
func SelectiveTimeoutConfig(defaultTimeout, llmTimeout time.Duration) echo.MiddlewareFunc {
	standard := TimeoutConfig(defaultTimeout)
	extended := TimeoutConfig(llmTimeout)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, p := range llmPaths {
				if strings.HasPrefix(path, p) {
					return extended(next)(c)
				}
			}
			return standard(next)(c)
		}
	}
}
