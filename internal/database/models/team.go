package models

// Team represents a team whose members meet in standups
type Team struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;not null"`

	// Relationships
	Users    []User    `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Standups []Standup `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
