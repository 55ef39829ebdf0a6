package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each request's method, path, status and latency
// through slog, the way the Adithya search handler logs each query with
// "query", "latency_ms", and outcome fields attached.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "api")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Query("q")

		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if query != "" {
			fields = append(fields, "query", query)
		}

		if len(c.Errors) > 0 {
			logger.Error("request failed", append(fields, "error", c.Errors.String())...)
			return
		}
		logger.Info("request completed", fields...)
	}
}
