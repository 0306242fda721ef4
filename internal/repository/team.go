package repository

import (
	"context"
	"time"

	"standup-api-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	base
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB, timeout time.Duration) *TeamRepository {
	return &TeamRepository{base: newBase(db, timeout)}
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	db, _, cancel := r.conn(ctx)
	defer cancel()

	var team models.Team
	if err := db.First(&team, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}
