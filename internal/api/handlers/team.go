package handlers

import (
	"standup-api-backend/internal/api/response"
	"standup-api-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for teams and rosters
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// GetTeamName handles GET /teamname/:team_id
// @Summary Get team
// @Description Get a single team by id
// @Tags teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} response.Envelope{data=models.Team} "Team"
// @Failure 400 {object} response.Envelope "Invalid team id or response is empty"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Router /teamname/{team_id} [get]
func (h *TeamHandler) GetTeamName(c *gin.Context) {
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, team)
}

// GetTeamMembers handles GET /teams/members/:team_id
// @Summary List team members
// @Description List the users on a team
// @Tags teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} response.Envelope{data=[]models.User} "Members"
// @Failure 400 {object} response.Envelope "Invalid team id or response is empty"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Router /teams/members/{team_id} [get]
func (h *TeamHandler) GetTeamMembers(c *gin.Context) {
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}

	members, err := h.teamService.GetMembers(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, members)
}
