package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "standup-api-backend/internal/errors"
	"standup-api-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Outcome
	}{
		{"nil", nil, OutcomeSuccess},
		{"empty", fmt.Errorf("wrapped: %w", apperrors.ErrEmptyResult), OutcomeEmptyResult},
		{"no upcoming", apperrors.ErrNoUpcomingStandup, OutcomeNoUpcoming},
		{"not found", fmt.Errorf("failed to create standup: %w", apperrors.NewNotFoundError("team", 9)), OutcomePreconditionFailed},
		{"validation", apperrors.NewValidationError("notes", "is required"), OutcomeValidationFailure},
		{"write failed", fmt.Errorf("failed to update: %w", apperrors.ErrWriteFailed), OutcomeWriteFailed},
		{"store", errors.New("pq: connection refused"), OutcomeStoreError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func run(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	s := testutils.SetupHTTPTest()
	s.Router.GET("/x", handler)
	return s.MakeRequest(http.MethodGet, "/x", nil)
}

func TestErrorStatusAndMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"empty", apperrors.ErrEmptyResult, http.StatusBadRequest, "response is empty"},
		{"no upcoming", apperrors.ErrNoUpcomingStandup, http.StatusBadRequest, "no upcoming standup"},
		{"not found", fmt.Errorf("failed: %w", apperrors.NewNotFoundError("team", 999999)), http.StatusNotFound, "team with id 999999 not found"},
		{"validation", apperrors.NewValidationError("chair_id", "is required"), http.StatusBadRequest, "chair_id"},
		{"write failed", apperrors.ErrWriteFailed, http.StatusBadRequest, "write failed"},
		{"store", errors.New("FATAL: password authentication failed"), http.StatusInternalServerError, MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := run(func(c *gin.Context) { Error(c, tt.err) })
			testutils.AssertErrorResponse(t, rec, tt.status, tt.message)
		})
	}
}

func TestStoreErrorTextIsNotLeaked(t *testing.T) {
	rec := run(func(c *gin.Context) { Error(c, errors.New("relation \"standups\" does not exist")) })

	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestSuccessEnvelopes(t *testing.T) {
	rec := run(func(c *gin.Context) { Created(c, gin.H{"id": 1}) })
	var data map[string]int
	testutils.AssertSuccessResponse(t, rec, http.StatusCreated, &data)
	assert.Equal(t, 1, data["id"])

	rec = run(func(c *gin.Context) { List(c, []int{}, MsgNoActivities) })
	var items []int
	env := testutils.AssertSuccessResponse(t, rec, http.StatusOK, &items)
	assert.Empty(t, items)
	assert.NotNil(t, items)
	assert.Equal(t, MsgNoActivities, env.Message)

	rec = run(func(c *gin.Context) { List(c, []int{1, 2}, MsgNoActivities) })
	env = testutils.AssertSuccessResponse(t, rec, http.StatusOK, &items)
	assert.Equal(t, []int{1, 2}, items)
	assert.Empty(t, env.Message)
}
