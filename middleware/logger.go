package middleware

import (
	"time"

	"github.com/ncobase/studyverse/ctxutil"
	"github.com/ncobase/studyverse/logging/logger"

	"github.com/gin-gonic/gin"
)

// Logger creates a Gin middleware for request logging.
func Logger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		ctx := c.Request.Context()
		duration := time.Since(start)
		status := c.Writer.Status()
		kv := []any{
			"method", method,
			"path", path,
			"status", status,
			"duration", duration.String(),
			"ip", c.ClientIP(),
		}
		if userID := ctxutil.GetUserID(ctx); userID != "" {
			kv = append(kv, "user_id", userID)
		}

		switch {
		case status >= 500:
			l.Error(ctx, "HTTP request", kv...)
		case status >= 400:
			l.Warn(ctx, "HTTP request", kv...)
		default:
			l.Info(ctx, "HTTP request", kv...)
		}
	}
}
