package models

// User represents a member of a team. A user references its team, it does not own it.
type User struct {
	ID     int64  `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"size:100;not null"`
	TeamID *int64 `json:"team_id" gorm:"index"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
