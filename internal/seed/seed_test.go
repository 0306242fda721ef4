package seed

import (
	"context"
	"testing"

	"standup-api-backend/internal/database/models"
	"standup-api-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
teams:
  - name: platform
    members: [Ada, Grace]
    standups:
      - time: 2026-10-14T09:30:00Z
        chair: Grace
        meeting_link: https://meet.example.com/platform
        notes: sprint review
        activities:
          - user: Ada
            name: release notes
            url: https://git.example.com/pr/42
            comment: merged
      - time: 2026-10-16T09:30:00Z
        chair: Ada
  - name: data
    members: [Edsger]
`

func TestApplyIsIdempotent(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	file, err := Parse([]byte(sample))
	require.NoError(t, err)

	res, err := Apply(context.Background(), db, file)
	require.NoError(t, err)
	assert.Equal(t, Result{Teams: 2, Users: 3, Standups: 2, Activities: 1}, res)

	res, err = Apply(context.Background(), db, file)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)

	var standups []models.Standup
	require.NoError(t, db.Order("time").Find(&standups).Error)
	require.Len(t, standups, 2)
	assert.Equal(t, "sprint review", standups[0].Notes)

	var grace models.User
	require.NoError(t, db.Where("name = ?", "Grace").First(&grace).Error)
	assert.Equal(t, grace.ID, standups[0].ChairID)
}

func TestApplyRollsBackOnUnknownChair(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	file, err := Parse([]byte(`
teams:
  - name: platform
    members: [Ada]
    standups:
      - time: 2026-10-14T09:30:00Z
        chair: Nobody
`))
	require.NoError(t, err)

	_, err = Apply(context.Background(), db, file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nobody")

	var teams int64
	require.NoError(t, db.Model(&models.Team{}).Count(&teams).Error)
	assert.Equal(t, int64(0), teams)
}

func TestParseRejectsNamelessTeam(t *testing.T) {
	_, err := Parse([]byte("teams:\n  - members: [Ada]\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("teams: ["))
	assert.Error(t, err)
}
