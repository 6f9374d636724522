//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GameRepositoryTestSuite tests the GameRepository and PeriodRepository
type GameRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GameRepository
	periodRepo    *PeriodRepository
	teamRepo      *TeamRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet

	user *models.User
	team *models.Team
}

// SetupSuite runs before all tests in the suite
func (suite *GameRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewGameRepository(suite.baseTestSuite.DB)
	suite.periodRepo = NewPeriodRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *GameRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *GameRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.user = suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(suite.user))
	suite.team = suite.factories.Team.WithCreator(suite.user.ID)
	suite.NoError(suite.teamRepo.CreateWithAdmin(suite.team, suite.user.ID))
}

// TearDownTest runs after each test
func (suite *GameRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *GameRepositoryTestSuite) createGameWithPeriods() *models.Game {
	game := suite.factories.Game.Create(suite.team.ID, suite.user.ID)
	periods := []models.Period{
		{GameID: game.ID, PeriodNumber: 1, AttackingDirection: models.AttackingDirectionRight},
		{GameID: game.ID, PeriodNumber: 2, AttackingDirection: models.AttackingDirectionLeft},
		{GameID: game.ID, PeriodNumber: 3, AttackingDirection: models.AttackingDirectionRight},
	}
	suite.NoError(suite.repo.CreateWithPeriods(game, periods, nil))
	return game
}

// TestCreateWithPeriods tests that the game and its periods land together
func (suite *GameRepositoryTestSuite) TestCreateWithPeriods() {
	game := suite.createGameWithPeriods()

	periods, err := suite.periodRepo.GetByGame(game.ID)
	suite.NoError(err)
	suite.Len(periods, 3)

	suite.Equal(1, periods[0].PeriodNumber)
	suite.Equal(2, periods[1].PeriodNumber)
	suite.Equal(3, periods[2].PeriodNumber)
	suite.Equal(models.AttackingDirectionRight, periods[0].AttackingDirection)
	suite.Equal(models.AttackingDirectionLeft, periods[1].AttackingDirection)
	suite.Equal(models.AttackingDirectionRight, periods[2].AttackingDirection)
}

// TestDuplicatePeriodNumber tests the unique (game, period number) constraint
func (suite *GameRepositoryTestSuite) TestDuplicatePeriodNumber() {
	game := suite.createGameWithPeriods()

	dup := &models.Period{
		GameID:             game.ID,
		PeriodNumber:       2,
		AttackingDirection: models.AttackingDirectionLeft,
	}
	err := suite.baseTestSuite.DB.Create(dup).Error
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestUpdateAllPeriods tests the atomic direction rewrite
func (suite *GameRepositoryTestSuite) TestUpdateAllPeriods() {
	game := suite.createGameWithPeriods()

	periods, err := suite.periodRepo.GetByGame(game.ID)
	suite.NoError(err)

	for i := range periods {
		periods[i].AttackingDirection = periods[i].AttackingDirection.Opposite()
	}
	suite.NoError(suite.periodRepo.UpdateAll(periods))

	reloaded, err := suite.periodRepo.GetByGame(game.ID)
	suite.NoError(err)
	suite.Equal(models.AttackingDirectionLeft, reloaded[0].AttackingDirection)
	suite.Equal(models.AttackingDirectionRight, reloaded[1].AttackingDirection)
	suite.Equal(models.AttackingDirectionLeft, reloaded[2].AttackingDirection)
}

// TestDeleteCascades tests that deleting a game removes its dependents
func (suite *GameRepositoryTestSuite) TestDeleteCascades() {
	game := suite.createGameWithPeriods()

	suite.NoError(suite.repo.Delete(game.ID))

	_, err := suite.repo.GetByID(game.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	periods, err := suite.periodRepo.GetByGame(game.ID)
	suite.NoError(err)
	suite.Empty(periods)
}

// TestGetByTeam tests team scoping of the game list
func (suite *GameRepositoryTestSuite) TestGetByTeam() {
	suite.createGameWithPeriods()
	suite.createGameWithPeriods()

	other := suite.factories.Team.WithCreator(suite.user.ID)
	suite.NoError(suite.teamRepo.CreateWithAdmin(other, suite.user.ID))
	otherGame := suite.factories.Game.Create(other.ID, suite.user.ID)
	suite.NoError(suite.repo.CreateWithPeriods(otherGame, nil, nil))

	games, err := suite.repo.GetByTeam(suite.team.ID)
	suite.NoError(err)
	suite.Len(games, 2)
}

// TestGameRepositoryTestSuite runs the test suite
func TestGameRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GameRepositoryTestSuite))
}
