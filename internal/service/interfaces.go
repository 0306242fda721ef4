package service

import (
	"context"

	"standup-api-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetAll(ctx context.Context) ([]models.User, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	GetByID(ctx context.Context, id int64) (*models.Team, error)
	GetMembers(ctx context.Context, teamID int64) ([]models.User, error)
}

// StandupServiceInterface defines the interface for standup service
type StandupServiceInterface interface {
	Previous(ctx context.Context, teamID int64) ([]models.StandupSummary, error)
	Next(ctx context.Context, teamID int64) (*models.StandupSummary, error)
	Create(ctx context.Context, teamID int64, req *CreateStandupRequest) (*models.Standup, error)
	Update(ctx context.Context, id int64, req *UpdateStandupRequest) (*models.Standup, error)
	UpdateNotes(ctx context.Context, id int64, req *UpdateNotesRequest) (*models.Standup, error)
}

// ActivityServiceInterface defines the interface for activity service
type ActivityServiceInterface interface {
	ListByStandup(ctx context.Context, standupID int64) ([]models.Activity, error)
	Create(ctx context.Context, standupID int64, req *CreateActivityRequest) (*models.Activity, error)
	Update(ctx context.Context, id int64, req *UpdateActivityRequest) (*models.Activity, error)
}

var (
	_ UserServiceInterface     = (*UserService)(nil)
	_ TeamServiceInterface     = (*TeamService)(nil)
	_ StandupServiceInterface  = (*StandupService)(nil)
	_ ActivityServiceInterface = (*ActivityService)(nil)
)
