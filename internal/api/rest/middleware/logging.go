package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/postfeed-server/internal/logger"
)

// Logging writes one access log line per request.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, status and duration for each request.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	c.Next()

	duration := time.Since(start)
	status := c.Writer.Status()
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}

	args := []any{
		"method", c.Request.Method,
		"path", path,
		"status", status,
		"duration_ms", duration.Milliseconds(),
		"request_id", RequestIDFromContext(c),
	}

	if status >= http.StatusInternalServerError {
		if errs := c.Errors.String(); errs != "" {
			args = append(args, "error", errs)
		}
		l.logger.Error("HTTP request failed", args...)
		return
	}

	l.logger.Info("HTTP request completed", args...)
}
