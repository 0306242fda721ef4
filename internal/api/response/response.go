package response

import (
	"errors"
	"net/http"

	apperrors "standup-api-backend/internal/errors"
	"standup-api-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Envelope statuses
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Messages written for outcomes that carry no error text of their own
const (
	MsgNoActivities   = "no activities for this standup"
	MsgInternalError  = "internal server error"
	MsgRouteNotFound  = "route not found"
	MsgInvalidRequest = "invalid request body"
)

// Envelope is the JSON wrapper of every API response
type Envelope struct {
	Status  string      `json:"status" example:"success"`
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty" example:""`
}

// Outcome is the category an operation result falls into
type Outcome string

const (
	OutcomeSuccess            Outcome = "success"
	OutcomeEmptyResult        Outcome = "empty_result"
	OutcomeNoUpcoming         Outcome = "no_upcoming"
	OutcomePreconditionFailed Outcome = "precondition_failed"
	OutcomeValidationFailure  Outcome = "validation_failure"
	OutcomeWriteFailed        Outcome = "write_failed"
	OutcomeStoreError         Outcome = "store_error"
)

// Classify maps an error returned by a service to its outcome
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, apperrors.ErrEmptyResult):
		return OutcomeEmptyResult
	case errors.Is(err, apperrors.ErrNoUpcomingStandup):
		return OutcomeNoUpcoming
	case apperrors.IsNotFound(err):
		return OutcomePreconditionFailed
	case apperrors.IsValidation(err):
		return OutcomeValidationFailure
	case errors.Is(err, apperrors.ErrWriteFailed):
		return OutcomeWriteFailed
	default:
		return OutcomeStoreError
	}
}

// Success writes data with the success status
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Status: StatusSuccess, Data: data})
}

// OK writes data with 200
func OK(c *gin.Context, data interface{}) {
	Success(c, http.StatusOK, data)
}

// Created writes data with 201
func Created(c *gin.Context, data interface{}) {
	Success(c, http.StatusCreated, data)
}

// List writes a listing that may legitimately be empty. An empty list is
// still a success, with message explaining it.
func List[T any](c *gin.Context, items []T, emptyMessage string) {
	if len(items) == 0 {
		c.JSON(http.StatusOK, Envelope{Status: StatusSuccess, Data: []T{}, Message: emptyMessage})
		return
	}
	OK(c, items)
}

// Fail writes a failed envelope with the given status and message
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Status: StatusFailed, Message: message})
}

// BadRequest writes a 400 failed envelope
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// Error writes the failed envelope matching err. Store failures are logged with
// their full text and answered with a generic message.
func Error(c *gin.Context, err error) {
	switch Classify(err) {
	case OutcomeEmptyResult:
		BadRequest(c, apperrors.ErrEmptyResult.Error())
	case OutcomeNoUpcoming:
		BadRequest(c, apperrors.ErrNoUpcomingStandup.Error())
	case OutcomePreconditionFailed:
		var nf *apperrors.NotFoundError
		errors.As(err, &nf)
		Fail(c, http.StatusNotFound, nf.Error())
	case OutcomeValidationFailure:
		var verr *apperrors.ValidationError
		errors.As(err, &verr)
		BadRequest(c, verr.Error())
	case OutcomeWriteFailed:
		BadRequest(c, apperrors.ErrWriteFailed.Error())
	default:
		logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).WithError(err).Error("request failed")
		Fail(c, http.StatusInternalServerError, MsgInternalError)
	}
}
