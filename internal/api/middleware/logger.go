package middleware

import (
	"time"

	"standup-api-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger logs every request once it has been handled
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		status := c.Writer.Status()
		entry := logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"method":    c.Request.Method,
			"path":      path,
			"status":    status,
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		})

		switch {
		case status >= 500:
			entry.Error("request completed")
		case status >= 400:
			entry.Warn("request completed")
		default:
			entry.Info("request completed")
		}
	}
}
