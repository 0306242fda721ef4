package service

import (
	"context"
	"fmt"

	"standup-api-backend/internal/database/models"
	"standup-api-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// CreateActivityRequest represents the request to attach an activity to a standup
type CreateActivityRequest struct {
	UserID  int64   `json:"user_id" validate:"required,gt=0" example:"3"`
	Name    string  `json:"name" validate:"required,max=200" example:"Release notes"`
	URL     string  `json:"url" validate:"required,max=500" example:"https://git.example.com/pr/42"`
	Comment *string `json:"comment" validate:"required" example:"ready for review"`
}

// UpdateActivityRequest represents the request to rewrite an activity
type UpdateActivityRequest struct {
	Name    string  `json:"name" validate:"required,max=200" example:"Release notes"`
	URL     string  `json:"url" validate:"required,max=500" example:"https://git.example.com/pr/42"`
	Comment *string `json:"comment" validate:"required" example:"merged"`
}

// ActivityService handles business logic for standup activities
type ActivityService struct {
	repo      repository.ActivityRepositoryInterface
	validator *validator.Validate
}

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityRepositoryInterface, validator *validator.Validate) *ActivityService {
	return &ActivityService{repo: repo, validator: validator}
}

// ListByStandup returns the activities of a standup in insertion order. The list may be empty.
func (s *ActivityService) ListByStandup(ctx context.Context, standupID int64) ([]models.Activity, error) {
	activities, err := s.repo.GetByStandupID(ctx, standupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}
	if activities == nil {
		activities = []models.Activity{}
	}
	return activities, nil
}

// Create attaches an activity to an existing standup
func (s *ActivityService) Create(ctx context.Context, standupID int64, req *CreateActivityRequest) (*models.Activity, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	activity := &models.Activity{
		StandupID: standupID,
		UserID:    req.UserID,
		Name:      req.Name,
		URL:       req.URL,
		Comment:   deref(req.Comment),
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return activity, nil
}

// Update rewrites the name, url and comment of an activity
func (s *ActivityService) Update(ctx context.Context, id int64, req *UpdateActivityRequest) (*models.Activity, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	activity, err := s.repo.Update(ctx, id, repository.ActivityFields{
		Name:    req.Name,
		URL:     req.URL,
		Comment: deref(req.Comment),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}
	return activity, nil
}
