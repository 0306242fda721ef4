package handlers

import (
	"fmt"
	"strconv"

	"standup-api-backend/internal/api/response"

	"github.com/gin-gonic/gin"
)

// pathID parses a positive integer path parameter. On failure it writes the
// 400 response and returns false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, fmt.Sprintf("invalid %s: must be a positive integer", name))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body into req. On failure it writes the 400
// response and returns false.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, response.MsgInvalidRequest+": "+err.Error())
		return false
	}
	return true
}
