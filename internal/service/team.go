package service

import (
	"context"
	"errors"
	"fmt"

	"standup-api-backend/internal/cache"
	"standup-api-backend/internal/database/models"
	apperrors "standup-api-backend/internal/errors"
	"standup-api-backend/internal/repository"

	"gorm.io/gorm"
)

// TeamService handles business logic for teams and their rosters
type TeamService struct {
	repo     repository.TeamRepositoryInterface
	userRepo repository.UserRepositoryInterface
	cache    cache.Cache
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, c cache.Cache) *TeamService {
	if c == nil {
		c = cache.NewNoop()
	}
	return &TeamService{repo: repo, userRepo: userRepo, cache: c}
}

// GetByID returns a single team. An unknown id is ErrEmptyResult.
func (s *TeamService) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	team, err := cache.Fetch(ctx, s.cache, fmt.Sprintf("teams:%d", id), func(ctx context.Context) (*models.Team, error) {
		return s.repo.GetByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmptyResult
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// GetMembers returns the users on a team. No members is ErrEmptyResult.
func (s *TeamService) GetMembers(ctx context.Context, teamID int64) ([]models.User, error) {
	members, err := cache.FetchList(ctx, s.cache, fmt.Sprintf("teams:%d:members", teamID), func(ctx context.Context) ([]models.User, error) {
		return s.userRepo.GetByTeamID(ctx, teamID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	if len(members) == 0 {
		return nil, apperrors.ErrEmptyResult
	}
	return members, nil
}
