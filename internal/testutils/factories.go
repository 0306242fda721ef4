package testutils

import (
	"testing"
	"time"

	"standup-api-backend/internal/database/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Fixtures inserts rows directly, bypassing the repositories under test
type Fixtures struct {
	t  *testing.T
	db *gorm.DB
}

// NewFixtures creates a fixture helper bound to db
func NewFixtures(t *testing.T, db *gorm.DB) *Fixtures {
	return &Fixtures{t: t, db: db}
}

// Team inserts a team
func (f *Fixtures) Team(name string) *models.Team {
	f.t.Helper()
	team := &models.Team{Name: name}
	require.NoError(f.t, f.db.Create(team).Error)
	return team
}

// User inserts a user on the given team
func (f *Fixtures) User(name string, teamID int64) *models.User {
	f.t.Helper()
	user := &models.User{Name: name, TeamID: &teamID}
	require.NoError(f.t, f.db.Create(user).Error)
	return user
}

// Standup inserts a standup at the given time
func (f *Fixtures) Standup(teamID, chairID int64, at time.Time) *models.Standup {
	f.t.Helper()
	standup := &models.Standup{
		TeamID:      teamID,
		ChairID:     chairID,
		Time:        at.UTC(),
		MeetingLink: "https://meet.example.com/standup",
		Notes:       "",
	}
	require.NoError(f.t, f.db.Create(standup).Error)
	return standup
}

// Activity inserts an activity on the given standup
func (f *Fixtures) Activity(standupID, userID int64, name string) *models.Activity {
	f.t.Helper()
	activity := &models.Activity{
		StandupID: standupID,
		UserID:    userID,
		Name:      name,
		URL:       "https://example.com/" + name,
		Comment:   "done",
	}
	require.NoError(f.t, f.db.Create(activity).Error)
	return activity
}

// CountStandups returns the number of standups stored for a team
func (f *Fixtures) CountStandups(teamID int64) int64 {
	f.t.Helper()
	var n int64
	require.NoError(f.t, f.db.Model(&models.Standup{}).Where("team_id = ?", teamID).Count(&n).Error)
	return n
}

// FixedClock returns a clock that always reports at
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
