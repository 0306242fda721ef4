package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"standup-api-backend/internal/database/models"
	apperrors "standup-api-backend/internal/errors"
	"standup-api-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// PreviousStandupsLimit caps the previous standups listing
const PreviousStandupsLimit = 5

// CreateStandupRequest represents the request to schedule a standup
type CreateStandupRequest struct {
	Time        time.Time `json:"time" validate:"required" example:"2026-10-16T09:30:00Z"`
	ChairID     int64     `json:"chair_id" validate:"required,gt=0" example:"3"`
	MeetingLink *string   `json:"meeting_link" validate:"required,max=500" example:"https://meet.example.com/platform"`
	Notes       *string   `json:"notes" validate:"required" example:""`
}

// UpdateStandupRequest represents the request to reschedule a standup
type UpdateStandupRequest struct {
	Time        time.Time `json:"time" validate:"required" example:"2026-10-16T10:00:00Z"`
	ChairID     int64     `json:"chair_id" validate:"required,gt=0" example:"4"`
	MeetingLink *string   `json:"meeting_link" validate:"required,max=500" example:"https://meet.example.com/platform"`
}

// UpdateNotesRequest represents the request to rewrite a standup's notes
type UpdateNotesRequest struct {
	Notes *string `json:"notes" validate:"required" example:"release moved to Thursday"`
}

// StandupService handles business logic for standups
type StandupService struct {
	repo      repository.StandupRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewStandupService creates a new standup service
func NewStandupService(repo repository.StandupRepositoryInterface, validator *validator.Validate) *StandupService {
	return &StandupService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// WithClock replaces the clock the temporal windows are computed from
func (s *StandupService) WithClock(now func() time.Time) *StandupService {
	s.now = now
	return s
}

// Previous returns the latest standups of a team that took place before now
func (s *StandupService) Previous(ctx context.Context, teamID int64) ([]models.StandupSummary, error) {
	standups, err := s.repo.GetPrevious(ctx, teamID, s.now(), PreviousStandupsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get previous standups: %w", err)
	}
	if len(standups) == 0 {
		return nil, apperrors.ErrEmptyResult
	}
	return standups, nil
}

// Next returns the earliest standup of a team scheduled after now
func (s *StandupService) Next(ctx context.Context, teamID int64) (*models.StandupSummary, error) {
	standup, err := s.repo.GetNext(ctx, teamID, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoUpcomingStandup
		}
		return nil, fmt.Errorf("failed to get next standup: %w", err)
	}
	return standup, nil
}

// Create schedules a standup for an existing team
func (s *StandupService) Create(ctx context.Context, teamID int64, req *CreateStandupRequest) (*models.Standup, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	standup := &models.Standup{
		TeamID:      teamID,
		Time:        req.Time,
		ChairID:     req.ChairID,
		MeetingLink: deref(req.MeetingLink),
		Notes:       deref(req.Notes),
	}
	if err := s.repo.Create(ctx, standup); err != nil {
		return nil, fmt.Errorf("failed to create standup: %w", err)
	}
	return standup, nil
}

// Update rewrites the time, chair and meeting link of a standup
func (s *StandupService) Update(ctx context.Context, id int64, req *UpdateStandupRequest) (*models.Standup, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	standup, err := s.repo.Update(ctx, id, repository.StandupFields{
		Time:        req.Time,
		ChairID:     req.ChairID,
		MeetingLink: deref(req.MeetingLink),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update standup: %w", err)
	}
	return standup, nil
}

// UpdateNotes rewrites only the notes of a standup
func (s *StandupService) UpdateNotes(ctx context.Context, id int64, req *UpdateNotesRequest) (*models.Standup, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	standup, err := s.repo.UpdateNotes(ctx, id, deref(req.Notes))
	if err != nil {
		return nil, fmt.Errorf("failed to update standup notes: %w", err)
	}
	return standup, nil
}
