package handlers

import (
	"standup-api-backend/internal/api/response"
	"standup-api-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StandupHandler handles HTTP requests for standups
type StandupHandler struct {
	standupService service.StandupServiceInterface
}

// NewStandupHandler creates a new standup handler
func NewStandupHandler(standupService service.StandupServiceInterface) *StandupHandler {
	return &StandupHandler{standupService: standupService}
}

// GetPreviousStandups handles GET /standups/previous/:team_id
// @Summary Previous standups
// @Description The five most recent standups of a team scheduled before now, newest first, with the chair's name
// @Tags standups
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} response.Envelope{data=[]models.StandupSummary} "Previous standups"
// @Failure 400 {object} response.Envelope "Invalid team id or response is empty"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Router /standups/previous/{team_id} [get]
func (h *StandupHandler) GetPreviousStandups(c *gin.Context) {
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}

	standups, err := h.standupService.Previous(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, standups)
}

// GetNextStandup handles GET /standups/next/:team_id
// @Summary Next standup
// @Description The earliest standup of a team scheduled after now, with the chair's name
// @Tags standups
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} response.Envelope{data=models.StandupSummary} "Next standup"
// @Failure 400 {object} response.Envelope "Invalid team id or no upcoming standup"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Router /standups/next/{team_id} [get]
func (h *StandupHandler) GetNextStandup(c *gin.Context) {
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}

	standup, err := h.standupService.Next(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, standup)
}

// CreateStandup handles POST /standups/:team_id
// @Summary Schedule a standup
// @Description Schedule a standup for an existing team
// @Tags standups
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param standup body service.CreateStandupRequest true "Standup data"
// @Success 201 {object} response.Envelope{data=models.Standup} "Created standup"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 404 {object} response.Envelope "Team not found"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Router /standups/{team_id} [post]
func (h *StandupHandler) CreateStandup(c *gin.Context) {
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	var req service.CreateStandupRequest
	if !bindJSON(c, &req) {
		return
	}

	standup, err := h.standupService.Create(c.Request.Context(), teamID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, standup)
}

// UpdateStandup handles PUT /standups/:standup_id
// @Summary Reschedule a standup
// @Description Rewrite the time, chair and meeting link of a standup. Notes are left unchanged.
// @Tags standups
// @Accept json
// @Produce json
// @Param standup_id path int true "Standup ID"
// @Param standup body service.UpdateStandupRequest true "Schedule data"
// @Success 200 {object} response.Envelope{data=models.Standup} "Updated standup"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 404 {object} response.Envelope "Standup not found"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Router /standups/{standup_id} [put]
func (h *StandupHandler) UpdateStandup(c *gin.Context) {
	standupID, ok := pathID(c, "standup_id")
	if !ok {
		return
	}
	var req service.UpdateStandupRequest
	if !bindJSON(c, &req) {
		return
	}

	standup, err := h.standupService.Update(c.Request.Context(), standupID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, standup)
}

// UpdateStandupNotes handles PUT /standups/notes/:standup_id
// @Summary Rewrite standup notes
// @Description Rewrite only the notes of a standup
// @Tags standups
// @Accept json
// @Produce json
// @Param standup_id path int true "Standup ID"
// @Param notes body service.UpdateNotesRequest true "Notes"
// @Success 200 {object} response.Envelope{data=models.Standup} "Updated standup"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 404 {object} response.Envelope "Standup not found"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Router /standups/notes/{standup_id} [put]
func (h *StandupHandler) UpdateStandupNotes(c *gin.Context) {
	standupID, ok := pathID(c, "standup_id")
	if !ok {
		return
	}
	var req service.UpdateNotesRequest
	if !bindJSON(c, &req) {
		return
	}

	standup, err := h.standupService.UpdateNotes(c.Request.Context(), standupID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, standup)
}
