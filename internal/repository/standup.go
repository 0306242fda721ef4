package repository

import (
	"context"
	"time"

	"standup-api-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const standupSummaryColumns = "standups.id, standups.team_id, standups.time, standups.chair_id, " +
	"standups.meeting_link, standups.notes, COALESCE(users.name, '') AS chair_name"

// StandupFields are the schedule columns rewritten by a standup update
type StandupFields struct {
	Time        time.Time
	ChairID     int64
	MeetingLink string
}

// StandupRepository handles database operations for standups
type StandupRepository struct {
	base
	guard *MutationGuard
}

// NewStandupRepository creates a new standup repository
func NewStandupRepository(db *gorm.DB, guard *MutationGuard, timeout time.Duration) *StandupRepository {
	return &StandupRepository{base: newBase(db, timeout), guard: guard}
}

// Create inserts a standup for an existing team. The generated id is set on standup.
func (r *StandupRepository) Create(ctx context.Context, standup *models.Standup) error {
	standup.Time = standup.Time.UTC()
	return r.guard.Write(ctx, EntityTeam, standup.TeamID, func(tx *gorm.DB) (int64, error) {
		res := tx.Omit(clause.Associations).Create(standup)
		return res.RowsAffected, res.Error
	})
}

// Update rewrites time, chair and meeting link of an existing standup
func (r *StandupRepository) Update(ctx context.Context, id int64, fields StandupFields) (*models.Standup, error) {
	return r.update(ctx, id, map[string]interface{}{
		"time":         fields.Time.UTC(),
		"chair_id":     fields.ChairID,
		"meeting_link": fields.MeetingLink,
	})
}

// UpdateNotes rewrites only the notes of an existing standup
func (r *StandupRepository) UpdateNotes(ctx context.Context, id int64, notes string) (*models.Standup, error) {
	return r.update(ctx, id, map[string]interface{}{
		"notes": notes,
	})
}

func (r *StandupRepository) update(ctx context.Context, id int64, columns map[string]interface{}) (*models.Standup, error) {
	var updated models.Standup
	err := r.guard.Write(ctx, EntityStandup, id, func(tx *gorm.DB) (int64, error) {
		res := tx.Model(&models.Standup{}).Where("id = ?", id).Updates(columns)
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

// GetPrevious returns up to limit standups of a team strictly before now, newest first
func (r *StandupRepository) GetPrevious(ctx context.Context, teamID int64, now time.Time, limit int) ([]models.StandupSummary, error) {
	db, _, cancel := r.conn(ctx)
	defer cancel()

	var rows []models.StandupSummary
	err := r.summaries(db).
		Where("standups.team_id = ? AND standups.time < ?", teamID, now.UTC()).
		Order("standups.time DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetNext returns the earliest standup of a team strictly after now.
// It returns gorm.ErrRecordNotFound when there is none.
func (r *StandupRepository) GetNext(ctx context.Context, teamID int64, now time.Time) (*models.StandupSummary, error) {
	db, _, cancel := r.conn(ctx)
	defer cancel()

	var rows []models.StandupSummary
	err := r.summaries(db).
		Where("standups.team_id = ? AND standups.time > ?", teamID, now.UTC()).
		Order("standups.time ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *StandupRepository) summaries(db *gorm.DB) *gorm.DB {
	return db.Table("standups").
		Select(standupSummaryColumns).
		Joins("LEFT JOIN users ON users.id = standups.chair_id")
}
