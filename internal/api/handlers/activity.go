package handlers

import (
	"standup-api-backend/internal/api/response"
	"standup-api-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles HTTP requests for standup activities
type ActivityHandler struct {
	activityService service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// GetStandupActivities handles GET /standups/activities/:standup_id
// @Summary List activities
// @Description List the activities attached to a standup. An empty list is a success.
// @Tags activities
// @Produce json
// @Param standup_id path int true "Standup ID"
// @Success 200 {object} response.Envelope{data=[]models.Activity} "Activities"
// @Failure 400 {object} response.Envelope "Invalid standup id"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Router /standups/activities/{standup_id} [get]
func (h *ActivityHandler) GetStandupActivities(c *gin.Context) {
	standupID, ok := pathID(c, "standup_id")
	if !ok {
		return
	}

	activities, err := h.activityService.ListByStandup(c.Request.Context(), standupID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, activities, response.MsgNoActivities)
}

// CreateActivity handles POST /activity/:standup_id
// @Summary Add an activity
// @Description Attach an activity to an existing standup
// @Tags activities
// @Accept json
// @Produce json
// @Param standup_id path int true "Standup ID"
// @Param activity body service.CreateActivityRequest true "Activity data"
// @Success 201 {object} response.Envelope{data=models.Activity} "Created activity"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 404 {object} response.Envelope "Standup not found"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Router /activity/{standup_id} [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	standupID, ok := pathID(c, "standup_id")
	if !ok {
		return
	}
	var req service.CreateActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := h.activityService.Create(c.Request.Context(), standupID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, activity)
}

// UpdateActivity handles PUT /activity/:activity_id
// @Summary Update an activity
// @Description Rewrite the name, url and comment of an activity
// @Tags activities
// @Accept json
// @Produce json
// @Param activity_id path int true "Activity ID"
// @Param activity body service.UpdateActivityRequest true "Activity data"
// @Success 200 {object} response.Envelope{data=models.Activity} "Updated activity"
// @Failure 400 {object} response.Envelope "Invalid request"
// @Failure 404 {object} response.Envelope "Activity not found"
// @Failure 500 {object} response.Envelope "Internal server error"
// @Router /activity/{activity_id} [put]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	activityID, ok := pathID(c, "activity_id")
	if !ok {
		return
	}
	var req service.UpdateActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := h.activityService.Update(c.Request.Context(), activityID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, activity)
}
