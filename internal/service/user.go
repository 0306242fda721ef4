package service

import (
	"context"
	"fmt"

	"standup-api-backend/internal/cache"
	"standup-api-backend/internal/database/models"
	apperrors "standup-api-backend/internal/errors"
	"standup-api-backend/internal/repository"
)

const usersCacheKey = "users"

// UserService handles business logic for users
type UserService struct {
	repo  repository.UserRepositoryInterface
	cache cache.Cache
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, c cache.Cache) *UserService {
	if c == nil {
		c = cache.NewNoop()
	}
	return &UserService{repo: repo, cache: c}
}

// GetAll returns every user. No users is ErrEmptyResult.
func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := cache.FetchList(ctx, s.cache, usersCacheKey, s.repo.GetAll)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	if len(users) == 0 {
		return nil, apperrors.ErrEmptyResult
	}
	return users, nil
}
