package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message with id", func(t *testing.T) {
		err := &NotFoundError{Entity: "team", ID: 999999}
		assert.Equal(t, "team with id 999999 not found", err.Error())
	})

	t.Run("Error message without id", func(t *testing.T) {
		err := &NotFoundError{Entity: "standup"}
		assert.Equal(t, "standup not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err := NewNotFoundError("team", 12)
		assert.True(t, errors.Is(err, ErrTeamNotFound))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err := NewNotFoundError("standup", 12)
		assert.False(t, errors.Is(err, ErrTeamNotFound))
		assert.True(t, errors.Is(err, ErrStandupNotFound))
	})

	t.Run("IsNotFound helper through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("create standup: %w", NewNotFoundError("team", 3))
		assert.True(t, IsNotFound(wrapped))
		assert.False(t, IsNotFound(ErrWriteFailed))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "chair_id", Message: "is required"}
		assert.Equal(t, "validation error: chair_id - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid body"}
		assert.Equal(t, "validation error: invalid body", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("time", "is required")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestSentinels(t *testing.T) {
	assert.Equal(t, "response is empty", ErrEmptyResult.Error())
	assert.Equal(t, "no upcoming standup", ErrNoUpcomingStandup.Error())
	assert.True(t, errors.Is(fmt.Errorf("update: %w", ErrWriteFailed), ErrWriteFailed))
	assert.Equal(t, "REDIS_URL must be set when CACHE_BACKEND is redis", ErrRedisURLMissing.Error())
}
