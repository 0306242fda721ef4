package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"standup-api-backend/internal/database/models"
	apperrors "standup-api-backend/internal/errors"
	"standup-api-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// StandupRepositoryTestSuite tests the StandupRepository
type StandupRepositoryTestSuite struct {
	suite.Suite
	db       *gorm.DB
	fixtures *testutils.Fixtures
	repo     *StandupRepository
	now      time.Time
	team     *models.Team
	chair    *models.User
}

// SetupTest opens a fresh database with one team and its chair
func (suite *StandupRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.fixtures = testutils.NewFixtures(suite.T(), suite.db)
	suite.repo = NewStandupRepository(suite.db, NewMutationGuard(suite.db, time.Second), time.Second)
	suite.now = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)
	suite.team = suite.fixtures.Team("platform")
	suite.chair = suite.fixtures.User("Grace", suite.team.ID)
}

func (suite *StandupRepositoryTestSuite) TestCreate() {
	standup := &models.Standup{
		TeamID:      suite.team.ID,
		Time:        suite.now.Add(24 * time.Hour),
		ChairID:     suite.chair.ID,
		MeetingLink: "https://meet.example.com/abc",
		Notes:       "bring coffee",
	}

	err := suite.repo.Create(context.Background(), standup)

	suite.NoError(err)
	suite.NotZero(standup.ID)

	stored := suite.stored(standup.ID)
	suite.Equal("bring coffee", stored.Notes)
	suite.True(stored.Time.Equal(suite.now.Add(24 * time.Hour)))
}

func (suite *StandupRepositoryTestSuite) TestCreateUnknownTeamInsertsNothing() {
	before := suite.fixtures.CountStandups(999999)

	err := suite.repo.Create(context.Background(), &models.Standup{
		TeamID:  999999,
		Time:    suite.now.Add(time.Hour),
		ChairID: suite.chair.ID,
	})

	suite.True(errors.Is(err, apperrors.ErrTeamNotFound))
	suite.Equal(before, suite.fixtures.CountStandups(999999))

	var total int64
	suite.NoError(suite.db.Model(&models.Standup{}).Count(&total).Error)
	suite.Equal(int64(0), total)
}

func (suite *StandupRepositoryTestSuite) TestGetPreviousLimitsAndOrders() {
	for i := 1; i <= 7; i++ {
		suite.fixtures.Standup(suite.team.ID, suite.chair.ID, suite.now.Add(-time.Duration(i)*24*time.Hour))
	}
	suite.fixtures.Standup(suite.team.ID, suite.chair.ID, suite.now.Add(24*time.Hour))
	other := suite.fixtures.Team("data")
	suite.fixtures.Standup(other.ID, suite.chair.ID, suite.now.Add(-time.Hour))

	rows, err := suite.repo.GetPrevious(context.Background(), suite.team.ID, suite.now, 5)

	suite.NoError(err)
	suite.Len(rows, 5)
	for i, row := range rows {
		suite.Equal(suite.team.ID, row.TeamID)
		suite.Equal("Grace", row.ChairName)
		suite.True(row.Time.Before(suite.now))
		if i > 0 {
			suite.True(row.Time.Before(rows[i-1].Time), "rows must be strictly descending")
		}
	}
	suite.True(rows[0].Time.Equal(suite.now.Add(-24 * time.Hour)))
}

func (suite *StandupRepositoryTestSuite) TestGetPreviousEmpty() {
	rows, err := suite.repo.GetPrevious(context.Background(), suite.team.ID, suite.now, 5)

	suite.NoError(err)
	suite.Empty(rows)
}

func (suite *StandupRepositoryTestSuite) TestGetNextReturnsEarliestUpcoming() {
	suite.fixtures.Standup(suite.team.ID, suite.chair.ID, suite.now.Add(-time.Hour))
	later := suite.fixtures.Standup(suite.team.ID, suite.chair.ID, suite.now.Add(48*time.Hour))
	sooner := suite.fixtures.Standup(suite.team.ID, suite.chair.ID, suite.now.Add(24*time.Hour))

	next, err := suite.repo.GetNext(context.Background(), suite.team.ID, suite.now)

	suite.NoError(err)
	suite.Equal(sooner.ID, next.ID)
	suite.NotEqual(later.ID, next.ID)
	suite.Equal("Grace", next.ChairName)
}

func (suite *StandupRepositoryTestSuite) TestGetNextNoneUpcoming() {
	suite.fixtures.Standup(suite.team.ID, suite.chair.ID, suite.now.Add(-time.Hour))

	next, err := suite.repo.GetNext(context.Background(), suite.team.ID, suite.now)

	suite.Nil(next)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	next, err = suite.repo.GetNext(context.Background(), 999999, suite.now)
	suite.Nil(next)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *StandupRepositoryTestSuite) TestStandupAtNowIsInNeitherWindow() {
	suite.fixtures.Standup(suite.team.ID, suite.chair.ID, suite.now)

	rows, err := suite.repo.GetPrevious(context.Background(), suite.team.ID, suite.now, 5)
	suite.NoError(err)
	suite.Empty(rows)

	_, err = suite.repo.GetNext(context.Background(), suite.team.ID, suite.now)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *StandupRepositoryTestSuite) TestChairWithoutUserRow() {
	suite.fixtures.Standup(suite.team.ID, 424242, suite.now.Add(time.Hour))

	next, err := suite.repo.GetNext(context.Background(), suite.team.ID, suite.now)

	suite.NoError(err)
	suite.Equal(int64(424242), next.ChairID)
	suite.Equal("", next.ChairName)
}

func (suite *StandupRepositoryTestSuite) TestUpdateNotesChangesOnlyNotes() {
	original := suite.fixtures.Standup(suite.team.ID, suite.chair.ID, suite.now.Add(time.Hour))

	updated, err := suite.repo.UpdateNotes(context.Background(), original.ID, "discussed the release")

	suite.NoError(err)
	suite.Equal("discussed the release", updated.Notes)
	suite.True(updated.Time.Equal(original.Time))
	suite.Equal(original.ChairID, updated.ChairID)
	suite.Equal(original.MeetingLink, updated.MeetingLink)
	suite.Equal(original.TeamID, updated.TeamID)
}

func (suite *StandupRepositoryTestSuite) TestUpdateNotesToEmpty() {
	original := suite.fixtures.Standup(suite.team.ID, suite.chair.ID, suite.now.Add(time.Hour))
	_, err := suite.repo.UpdateNotes(context.Background(), original.ID, "draft")
	suite.NoError(err)

	updated, err := suite.repo.UpdateNotes(context.Background(), original.ID, "")

	suite.NoError(err)
	suite.Equal("", updated.Notes)
}

func (suite *StandupRepositoryTestSuite) TestUpdateSchedule() {
	original := suite.fixtures.Standup(suite.team.ID, suite.chair.ID, suite.now.Add(time.Hour))
	_, err := suite.repo.UpdateNotes(context.Background(), original.ID, "keep me")
	suite.NoError(err)
	newChair := suite.fixtures.User("Linus", suite.team.ID)

	updated, err := suite.repo.Update(context.Background(), original.ID, StandupFields{
		Time:        suite.now.Add(2 * time.Hour),
		ChairID:     newChair.ID,
		MeetingLink: "https://meet.example.com/new",
	})

	suite.NoError(err)
	suite.True(updated.Time.Equal(suite.now.Add(2 * time.Hour)))
	suite.Equal(newChair.ID, updated.ChairID)
	suite.Equal("https://meet.example.com/new", updated.MeetingLink)
	suite.Equal("keep me", updated.Notes)
}

func (suite *StandupRepositoryTestSuite) TestUpdateMissingStandup() {
	updated, err := suite.repo.Update(context.Background(), 999999, StandupFields{
		Time:    suite.now,
		ChairID: suite.chair.ID,
	})
	suite.Nil(updated)
	suite.True(errors.Is(err, apperrors.ErrStandupNotFound))

	updated, err = suite.repo.UpdateNotes(context.Background(), 999999, "x")
	suite.Nil(updated)
	suite.True(errors.Is(err, apperrors.ErrStandupNotFound))
}

func (suite *StandupRepositoryTestSuite) TestConcurrentCreatesForOneTeam() {
	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	created := make([]*models.Standup, writers)

	for i := 0; i < writers; i++ {
		created[i] = &models.Standup{
			TeamID:      suite.team.ID,
			Time:        suite.now.Add(time.Duration(i+1) * time.Hour),
			ChairID:     suite.chair.ID,
			MeetingLink: "https://meet.example.com/concurrent",
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = suite.repo.Create(context.Background(), created[i])
		}(i)
	}
	wg.Wait()

	for i := 0; i < writers; i++ {
		suite.NoError(errs[i])
		stored := suite.stored(created[i].ID)
		suite.True(stored.Time.Equal(suite.now.Add(time.Duration(i+1) * time.Hour)))
		suite.Equal(suite.team.ID, stored.TeamID)
	}
	suite.Equal(int64(writers), suite.fixtures.CountStandups(suite.team.ID))
}

// stored reads a standup row directly
func (suite *StandupRepositoryTestSuite) stored(id int64) models.Standup {
	var standup models.Standup
	suite.Require().NoError(suite.db.First(&standup, "id = ?", id).Error)
	return standup
}

func TestStandupRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StandupRepositoryTestSuite))
}
