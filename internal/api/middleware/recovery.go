package middleware

import (
	"fmt"
	"net/http"

	"standup-api-backend/internal/api/response"
	"standup-api-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a logged 500 with the failed envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"panic":  fmt.Sprint(recovered),
		}).Error("recovered from panic")

		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Envelope{
			Status:  response.StatusFailed,
			Message: response.MsgInternalError,
		})
	})
}
