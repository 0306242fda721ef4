package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"standup-api-backend/internal/database/models"
	apperrors "standup-api-backend/internal/errors"
	"standup-api-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ActivityRepositoryTestSuite tests the ActivityRepository
type ActivityRepositoryTestSuite struct {
	suite.Suite
	db       *gorm.DB
	fixtures *testutils.Fixtures
	repo     *ActivityRepository
	standup  *models.Standup
	user     *models.User
}

// SetupTest opens a fresh database with one standup
func (suite *ActivityRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.fixtures = testutils.NewFixtures(suite.T(), suite.db)
	suite.repo = NewActivityRepository(suite.db, NewMutationGuard(suite.db, time.Second), time.Second)

	team := suite.fixtures.Team("platform")
	suite.user = suite.fixtures.User("Grace", team.ID)
	suite.standup = suite.fixtures.Standup(team.ID, suite.user.ID, time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC))
}

func (suite *ActivityRepositoryTestSuite) TestCreate() {
	activity := &models.Activity{
		StandupID: suite.standup.ID,
		UserID:    suite.user.ID,
		Name:      "release notes",
		URL:       "https://example.com/pr/1",
		Comment:   "ready for review",
	}

	err := suite.repo.Create(context.Background(), activity)

	suite.NoError(err)
	suite.NotZero(activity.ID)
}

func (suite *ActivityRepositoryTestSuite) TestCreateUnknownStandup() {
	err := suite.repo.Create(context.Background(), &models.Activity{
		StandupID: 999999,
		UserID:    suite.user.ID,
		Name:      "orphan",
		URL:       "https://example.com",
	})

	suite.True(errors.Is(err, apperrors.ErrStandupNotFound))
	var n int64
	suite.NoError(suite.db.Model(&models.Activity{}).Count(&n).Error)
	suite.Equal(int64(0), n)
}

func (suite *ActivityRepositoryTestSuite) TestGetByStandupIDInInsertionOrder() {
	first := suite.fixtures.Activity(suite.standup.ID, suite.user.ID, "first")
	second := suite.fixtures.Activity(suite.standup.ID, suite.user.ID, "second")

	activities, err := suite.repo.GetByStandupID(context.Background(), suite.standup.ID)

	suite.NoError(err)
	suite.Len(activities, 2)
	suite.Equal(first.ID, activities[0].ID)
	suite.Equal(second.ID, activities[1].ID)
}

func (suite *ActivityRepositoryTestSuite) TestGetByStandupIDEmpty() {
	activities, err := suite.repo.GetByStandupID(context.Background(), suite.standup.ID)

	suite.NoError(err)
	suite.Empty(activities)
}

func (suite *ActivityRepositoryTestSuite) TestUpdate() {
	activity := suite.fixtures.Activity(suite.standup.ID, suite.user.ID, "draft")

	updated, err := suite.repo.Update(context.Background(), activity.ID, ActivityFields{
		Name:    "final",
		URL:     "https://example.com/final",
		Comment: "",
	})

	suite.NoError(err)
	suite.Equal("final", updated.Name)
	suite.Equal("https://example.com/final", updated.URL)
	suite.Equal("", updated.Comment)
	suite.Equal(activity.StandupID, updated.StandupID)
	suite.Equal(activity.UserID, updated.UserID)
}

func (suite *ActivityRepositoryTestSuite) TestUpdateMissing() {
	updated, err := suite.repo.Update(context.Background(), 999999, ActivityFields{Name: "x", URL: "y"})

	suite.Nil(updated)
	suite.True(errors.Is(err, apperrors.ErrActivityNotFound))
}

func TestActivityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityRepositoryTestSuite))
}
