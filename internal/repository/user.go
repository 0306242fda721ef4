package repository

import (
	"context"
	"time"

	"standup-api-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	base
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, timeout time.Duration) *UserRepository {
	return &UserRepository{base: newBase(db, timeout)}
}

// GetAll retrieves every user ordered by id
func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	db, _, cancel := r.conn(ctx)
	defer cancel()

	var users []models.User
	if err := db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByTeamID retrieves the members of a team ordered by id
func (r *UserRepository) GetByTeamID(ctx context.Context, teamID int64) ([]models.User, error) {
	db, _, cancel := r.conn(ctx)
	defer cancel()

	var users []models.User
	if err := db.Where("team_id = ?", teamID).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
