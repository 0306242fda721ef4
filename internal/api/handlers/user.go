package handlers

import (
	"standup-api-backend/internal/api/response"
	"standup-api-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers handles GET /users
// @Summary List users
// @Description List every user with the team they belong to
// @Tags users
// @Produce json
// @Success 200 {object} response.Envelope{data=[]models.User} "Users"
// @Failure 400 {object} response.Envelope "response is empty"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Router /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, users)
}
