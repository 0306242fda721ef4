package repository

import (
	"context"
	"testing"

	"standup-api-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	fixtures := testutils.NewFixtures(t, db)
	repo := NewUserRepository(db, 0)

	platform := fixtures.Team("platform")
	data := fixtures.Team("data")
	ada := fixtures.User("Ada", platform.ID)
	fixtures.User("Edsger", data.ID)
	grace := fixtures.User("Grace", platform.ID)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	members, err := repo.GetByTeamID(context.Background(), platform.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, ada.ID, members[0].ID)
	assert.Equal(t, grace.ID, members[1].ID)
	assert.Equal(t, platform.ID, *members[0].TeamID)

	none, err := repo.GetByTeamID(context.Background(), 999999)
	require.NoError(t, err)
	assert.Empty(t, none)
}
