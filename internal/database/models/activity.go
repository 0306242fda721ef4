package models

// Activity is a status entry a user attaches to a standup
type Activity struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	StandupID int64  `json:"standup_id" gorm:"not null;index"`
	UserID    int64  `json:"user_id" gorm:"not null"`
	Name      string `json:"name" gorm:"size:200;not null"`
	URL       string `json:"url" gorm:"column:url;size:500;not null"`
	Comment   string `json:"comment" gorm:"type:text;not null;default:''"`
}

// TableName returns the table name for Activity
func (Activity) TableName() string {
	return "activities"
}
