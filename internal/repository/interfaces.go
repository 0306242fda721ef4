package repository

import (
	"context"
	"time"

	"standup-api-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*models.Team, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByTeamID(ctx context.Context, teamID int64) ([]models.User, error)
}

// StandupRepositoryInterface defines the interface for standup repository operations
type StandupRepositoryInterface interface {
	Create(ctx context.Context, standup *models.Standup) error
	Update(ctx context.Context, id int64, fields StandupFields) (*models.Standup, error)
	UpdateNotes(ctx context.Context, id int64, notes string) (*models.Standup, error)
	GetPrevious(ctx context.Context, teamID int64, now time.Time, limit int) ([]models.StandupSummary, error)
	GetNext(ctx context.Context, teamID int64, now time.Time) (*models.StandupSummary, error)
}

// ActivityRepositoryInterface defines the interface for activity repository operations
type ActivityRepositoryInterface interface {
	GetByStandupID(ctx context.Context, standupID int64) ([]models.Activity, error)
	Create(ctx context.Context, activity *models.Activity) error
	Update(ctx context.Context, id int64, fields ActivityFields) (*models.Activity, error)
}

var (
	_ TeamRepositoryInterface     = (*TeamRepository)(nil)
	_ UserRepositoryInterface     = (*UserRepository)(nil)
	_ StandupRepositoryInterface  = (*StandupRepository)(nil)
	_ ActivityRepositoryInterface = (*ActivityRepository)(nil)
)
