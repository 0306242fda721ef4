package repository

import (
	"context"
	"time"

	"standup-api-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActivityFields are the columns rewritten by an activity update
type ActivityFields struct {
	Name    string
	URL     string
	Comment string
}

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	base
	guard *MutationGuard
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB, guard *MutationGuard, timeout time.Duration) *ActivityRepository {
	return &ActivityRepository{base: newBase(db, timeout), guard: guard}
}

// GetByStandupID retrieves the activities of a standup in insertion order
func (r *ActivityRepository) GetByStandupID(ctx context.Context, standupID int64) ([]models.Activity, error) {
	db, _, cancel := r.conn(ctx)
	defer cancel()

	var activities []models.Activity
	if err := db.Where("standup_id = ?", standupID).Order("id").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// Create inserts an activity for an existing standup. The generated id is set on activity.
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return r.guard.Write(ctx, EntityStandup, activity.StandupID, func(tx *gorm.DB) (int64, error) {
		res := tx.Omit(clause.Associations).Create(activity)
		return res.RowsAffected, res.Error
	})
}

// Update rewrites name, url and comment of an existing activity
func (r *ActivityRepository) Update(ctx context.Context, id int64, fields ActivityFields) (*models.Activity, error) {
	var updated models.Activity
	err := r.guard.Write(ctx, EntityActivity, id, func(tx *gorm.DB) (int64, error) {
		res := tx.Model(&models.Activity{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":    fields.Name,
			"url":     fields.URL,
			"comment": fields.Comment,
		})
		if res.Error != nil || res.RowsAffected == 0 {
			return res.RowsAffected, res.Error
		}
		if err := tx.First(&updated, "id = ?", id).Error; err != nil {
			return 0, err
		}
		return res.RowsAffected, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
