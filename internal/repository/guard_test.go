package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"standup-api-backend/internal/database/models"
	apperrors "standup-api-backend/internal/errors"
	"standup-api-backend/internal/testutils"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MutationGuardTestSuite tests the ExistenceChecker and the MutationGuard
type MutationGuardTestSuite struct {
	suite.Suite
	db       *gorm.DB
	fixtures *testutils.Fixtures
	checker  *ExistenceChecker
	guard    *MutationGuard
}

// SetupTest opens a fresh database for every test
func (suite *MutationGuardTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.fixtures = testutils.NewFixtures(suite.T(), suite.db)
	suite.checker = NewExistenceChecker()
	suite.guard = NewMutationGuard(suite.db, time.Second)
}

func (suite *MutationGuardTestSuite) TestExists() {
	team := suite.fixtures.Team("platform")

	found, err := suite.checker.Exists(suite.db, EntityTeam, team.ID)
	suite.NoError(err)
	suite.True(found)

	found, err = suite.checker.Exists(suite.db, EntityTeam, 999999)
	suite.NoError(err)
	suite.False(found)

	found, err = suite.checker.Exists(suite.db, EntityStandup, team.ID)
	suite.NoError(err)
	suite.False(found)
}

func (suite *MutationGuardTestSuite) TestExistsUnknownEntity() {
	found, err := suite.checker.Exists(suite.db, Entity("meeting"), 1)
	suite.Error(err)
	suite.False(found)
}

func (suite *MutationGuardTestSuite) TestExistsInsideTransaction() {
	team := suite.fixtures.Team("platform")

	err := suite.db.Transaction(func(tx *gorm.DB) error {
		found, err := suite.checker.Exists(tx, EntityTeam, team.ID)
		suite.NoError(err)
		suite.True(found)
		return nil
	})
	suite.NoError(err)
}

func (suite *MutationGuardTestSuite) TestWriteBoundedByQueryTimeout() {
	team := suite.fixtures.Team("platform")
	guard := NewMutationGuard(suite.db, time.Nanosecond)

	called := false
	err := guard.Write(context.Background(), EntityTeam, team.ID, func(tx *gorm.DB) (int64, error) {
		called = true
		return 1, nil
	})

	suite.False(called)
	suite.ErrorIs(err, context.DeadlineExceeded)
	suite.False(apperrors.IsNotFound(err))
}

func (suite *MutationGuardTestSuite) TestWriteSkippedWhenParentMissing() {
	called := false
	err := suite.guard.Write(context.Background(), EntityTeam, 999999, func(tx *gorm.DB) (int64, error) {
		called = true
		return 1, nil
	})

	suite.False(called, "write must not run when the parent is missing")
	suite.True(errors.Is(err, apperrors.ErrTeamNotFound))
	suite.Equal("team with id 999999 not found", err.Error())
}

func (suite *MutationGuardTestSuite) TestWriteRunsWhenParentExists() {
	team := suite.fixtures.Team("platform")

	err := suite.guard.Write(context.Background(), EntityTeam, team.ID, func(tx *gorm.DB) (int64, error) {
		res := tx.Create(&models.User{Name: "Ada", TeamID: &team.ID})
		return res.RowsAffected, res.Error
	})

	suite.NoError(err)
	var n int64
	suite.NoError(suite.db.Model(&models.User{}).Where("team_id = ?", team.ID).Count(&n).Error)
	suite.Equal(int64(1), n)
}

func (suite *MutationGuardTestSuite) TestZeroAffectedRowsIsWriteFailed() {
	team := suite.fixtures.Team("platform")

	err := suite.guard.Write(context.Background(), EntityTeam, team.ID, func(tx *gorm.DB) (int64, error) {
		return 0, nil
	})

	suite.True(errors.Is(err, apperrors.ErrWriteFailed))
}

func (suite *MutationGuardTestSuite) TestFailedWriteRollsBack() {
	team := suite.fixtures.Team("platform")
	boom := errors.New("boom")

	err := suite.guard.Write(context.Background(), EntityTeam, team.ID, func(tx *gorm.DB) (int64, error) {
		if err := tx.Create(&models.User{Name: "Ada", TeamID: &team.ID}).Error; err != nil {
			return 0, err
		}
		return 0, boom
	})

	suite.ErrorIs(err, boom)
	var n int64
	suite.NoError(suite.db.Model(&models.User{}).Count(&n).Error)
	suite.Equal(int64(0), n)
}

func (suite *MutationGuardTestSuite) TestForeignKeyViolationIsNotFound() {
	team := suite.fixtures.Team("platform")

	err := suite.guard.Write(context.Background(), EntityTeam, team.ID, func(tx *gorm.DB) (int64, error) {
		return 0, fmt.Errorf("insert: %w", gorm.ErrForeignKeyViolated)
	})

	suite.True(apperrors.IsNotFound(err))
	suite.True(errors.Is(err, apperrors.ErrTeamNotFound))
}

func TestIsForeignKeyViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"gorm translated", gorm.ErrForeignKeyViolated, true},
		{"postgres sqlstate", &pgconn.PgError{Code: "23503"}, true},
		{"wrapped postgres sqlstate", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23503"}), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"other", errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isForeignKeyViolation(tc.err); got != tc.want {
				t.Errorf("isForeignKeyViolation(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestMutationGuardTestSuite(t *testing.T) {
	suite.Run(t, new(MutationGuardTestSuite))
}
