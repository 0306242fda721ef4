package models

import (
	"time"
)

// Standup represents a scheduled team meeting
type Standup struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	TeamID      int64     `json:"team_id" gorm:"not null;index:idx_standups_team_time,priority:1"`
	Time        time.Time `json:"time" gorm:"not null;index:idx_standups_team_time,priority:2"`
	ChairID     int64     `json:"chair_id" gorm:"not null"` // not checked against team membership
	MeetingLink string    `json:"meeting_link" gorm:"type:text;not null;default:''"`
	Notes       string    `json:"notes" gorm:"type:text;not null;default:''"`

	// Relationships
	Activities []Activity `json:"-" gorm:"foreignKey:StandupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Standup
func (Standup) TableName() string {
	return "standups"
}

// StandupSummary is a standup row joined with its chair's display name
type StandupSummary struct {
	ID          int64     `json:"id"`
	TeamID      int64     `json:"team_id"`
	Time        time.Time `json:"time"`
	ChairID     int64     `json:"chair_id"`
	MeetingLink string    `json:"meeting_link"`
	Notes       string    `json:"notes"`
	ChairName   string    `json:"chair_name"`
}
