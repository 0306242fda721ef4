package middleware

import (
	"standup-api-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in and out
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one, and stores it
// on the request context for logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(string(logger.RequestIDKey), id)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
