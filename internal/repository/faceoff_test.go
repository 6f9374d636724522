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

// FaceoffRepositoryTestSuite tests the FaceoffRepository
type FaceoffRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *FaceoffRepository
	gameRepo      *GameRepository
	playerRepo    *PlayerRepository
	teamRepo      *TeamRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet

	user   *models.User
	team   *models.Team
	game   *models.Game
	player *models.Player
}

// SetupSuite runs before all tests in the suite
func (suite *FaceoffRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewFaceoffRepository(suite.baseTestSuite.DB)
	suite.gameRepo = NewGameRepository(suite.baseTestSuite.DB)
	suite.playerRepo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *FaceoffRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a team, game and player
func (suite *FaceoffRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.user = suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(suite.user))
	suite.team = suite.factories.Team.WithCreator(suite.user.ID)
	suite.NoError(suite.teamRepo.CreateWithAdmin(suite.team, suite.user.ID))
	suite.game = suite.factories.Game.Create(suite.team.ID, suite.user.ID)
	suite.NoError(suite.gameRepo.CreateWithPeriods(suite.game, nil, nil))
	suite.player = suite.factories.Player.Create(suite.team.ID)
	suite.NoError(suite.playerRepo.CreateWithGameAttachment(suite.player))
}

// TearDownTest runs after each test
func (suite *FaceoffRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestOneRowPerPlayerPerGame tests the unique (game, player) constraint
func (suite *FaceoffRepositoryTestSuite) TestOneRowPerPlayerPerGame() {
	first := suite.factories.Faceoff.Create(suite.game.ID, suite.player.ID, suite.user.ID, 3, 1)
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Faceoff.Create(suite.game.ID, suite.player.ID, suite.user.ID, 1, 0)
	err := suite.repo.Create(second)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByGameAndPlayer tests the duplicate pre-check lookup
func (suite *FaceoffRepositoryTestSuite) TestGetByGameAndPlayer() {
	_, err := suite.repo.GetByGameAndPlayer(suite.game.ID, suite.player.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	faceoff := suite.factories.Faceoff.Create(suite.game.ID, suite.player.ID, suite.user.ID, 5, 2)
	suite.NoError(suite.repo.Create(faceoff))

	found, err := suite.repo.GetByGameAndPlayer(suite.game.ID, suite.player.ID)
	suite.NoError(err)
	suite.Equal(5, found.Taken)
	suite.Equal(2, found.Won)
}

// TestUpdateCounters tests overwriting the counters
func (suite *FaceoffRepositoryTestSuite) TestUpdateCounters() {
	faceoff := suite.factories.Faceoff.Create(suite.game.ID, suite.player.ID, suite.user.ID, 5, 2)
	suite.NoError(suite.repo.Create(faceoff))

	faceoff.Taken = 6
	faceoff.Won = 3
	suite.NoError(suite.repo.Update(faceoff))

	found, err := suite.repo.GetByID(faceoff.ID)
	suite.NoError(err)
	suite.Equal(6, found.Taken)
	suite.Equal(3, found.Won)
}

// TestGetByTeam tests team scoping across games
func (suite *FaceoffRepositoryTestSuite) TestGetByTeam() {
	suite.NoError(suite.repo.Create(suite.factories.Faceoff.Create(suite.game.ID, suite.player.ID, suite.user.ID, 4, 2)))

	otherTeam := suite.factories.Team.WithCreator(suite.user.ID)
	suite.NoError(suite.teamRepo.CreateWithAdmin(otherTeam, suite.user.ID))
	otherGame := suite.factories.Game.Create(otherTeam.ID, suite.user.ID)
	suite.NoError(suite.gameRepo.CreateWithPeriods(otherGame, nil, nil))
	otherPlayer := suite.factories.Player.Create(otherTeam.ID)
	suite.NoError(suite.playerRepo.CreateWithGameAttachment(otherPlayer))
	suite.NoError(suite.repo.Create(suite.factories.Faceoff.Create(otherGame.ID, otherPlayer.ID, suite.user.ID, 2, 2)))

	faceoffs, err := suite.repo.GetByTeam(suite.team.ID)
	suite.NoError(err)
	suite.Len(faceoffs, 1)
	suite.Equal(suite.game.ID, faceoffs[0].GameID)
}

// TestFaceoffRepositoryTestSuite runs the test suite
func TestFaceoffRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FaceoffRepositoryTestSuite))
}
