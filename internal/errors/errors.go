package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when a referenced entity does not exist
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError.
// Only the entity kind is compared so ErrTeamNotFound matches any missing team.
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound     = &NotFoundError{Entity: "team"}
	ErrStandupNotFound  = &NotFoundError{Entity: "standup"}
	ErrActivityNotFound = &NotFoundError{Entity: "activity"}
)

// Read outcomes that are not failures of the store
var (
	ErrEmptyResult       = errors.New("response is empty")
	ErrNoUpcomingStandup = errors.New("no upcoming standup")
)

// Write outcomes
var (
	ErrWriteFailed = errors.New("write failed")
)

// Configuration Errors
var (
	ErrRedisURLMissing = &ConfigurationError{Message: "REDIS_URL must be set when CACHE_BACKEND is redis"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for an entity and its id
func NewNotFoundError(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
