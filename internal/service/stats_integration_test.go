//go:build integration
// +build integration

package service_test

import (
	"strings"
	"testing"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"
	apperrors "github.com/CyberToe/HockeyAnalyst-sub000/internal/errors"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/logger"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/repository"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/service"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// StatsIntegrationTestSuite drives the services against a real database,
// walking the whole flow from team creation to analytics.
type StatsIntegrationTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	userRepo *repository.UserRepository
	shotRepo *repository.ShotRepository

	teams     *service.TeamService
	players   *service.PlayerService
	games     *service.GameService
	shots     *service.ShotService
	goals     *service.GoalService
	faceoffs  *service.FaceoffService
	analytics *service.AnalyticsService

	owner    *models.User
	outsider *models.User
	team     *models.Team
}

// SetupSuite runs before all tests in the suite
func (suite *StatsIntegrationTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	db := suite.baseTestSuite.DB
	validate := validator.New()
	log := logger.New()

	suite.userRepo = repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	gameRepo := repository.NewGameRepository(db)
	periodRepo := repository.NewPeriodRepository(db)
	gamePlayerRepo := repository.NewGamePlayerRepository(db)
	suite.shotRepo = repository.NewShotRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	faceoffRepo := repository.NewFaceoffRepository(db)

	membership := service.NewMembershipService(teamRepo, memberRepo)
	suite.teams = service.NewTeamService(teamRepo, memberRepo, membership, validate, log)
	suite.players = service.NewPlayerService(playerRepo, suite.shotRepo, membership, validate)
	suite.games = service.NewGameService(gameRepo, periodRepo, gamePlayerRepo, playerRepo, suite.shotRepo, membership, validate)
	suite.shots = service.NewShotService(suite.shotRepo, periodRepo, playerRepo, suite.games, validate)
	suite.goals = service.NewGoalService(goalRepo, playerRepo, suite.games, validate)
	suite.faceoffs = service.NewFaceoffService(faceoffRepo, playerRepo, suite.games, validate)
	suite.analytics = service.NewAnalyticsService(gameRepo, playerRepo, suite.shotRepo, goalRepo, faceoffRepo, periodRepo, suite.games, membership, log)
}

// TearDownSuite runs after all tests in the suite
func (suite *StatsIntegrationTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds two users plus one team
func (suite *StatsIntegrationTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.owner = suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(suite.owner))
	suite.outsider = suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(suite.outsider))

	team, err := suite.teams.Create(suite.owner.ID, &service.CreateTeamRequest{Name: "Ice Hawks"})
	suite.Require().NoError(err)
	suite.team = team
}

// TearDownTest runs after each test
func (suite *StatsIntegrationTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *StatsIntegrationTestSuite) createPlayer(name string) *models.Player {
	player, err := suite.players.Create(suite.owner.ID, suite.team.ID, &service.CreatePlayerRequest{Name: name})
	suite.Require().NoError(err)
	return player
}

func (suite *StatsIntegrationTestSuite) createGame() *models.Game {
	game, err := suite.games.Create(suite.owner.ID, suite.team.ID, &service.CreateGameRequest{Opponent: "Polar Bears"})
	suite.Require().NoError(err)
	return game
}

// TestTeamCodeShape tests that generated join codes match the published format
func (suite *StatsIntegrationTestSuite) TestTeamCodeShape() {
	suite.Len(suite.team.Code, service.TeamCodeLength)
	for _, r := range suite.team.Code {
		suite.True(strings.ContainsRune(service.TeamCodeAlphabet, r),
			"code %q contains %q outside the alphabet", suite.team.Code, r)
	}
}

// TestJoinByCode tests case-insensitive joining and its failure modes
func (suite *StatsIntegrationTestSuite) TestJoinByCode() {
	joined, err := suite.teams.Join(suite.outsider.ID, strings.ToLower(suite.team.Code))
	suite.NoError(err)
	suite.Equal(suite.team.ID, joined.ID)

	// Joining twice is rejected
	_, err = suite.teams.Join(suite.outsider.ID, suite.team.Code)
	suite.ErrorIs(err, apperrors.ErrMembershipExists)

	// Malformed codes never hit the database
	_, err = suite.teams.Join(suite.outsider.ID, "ABC")
	suite.ErrorIs(err, apperrors.ErrInvalidTeamCode)

	members, err := suite.teams.ListMembers(suite.owner.ID, suite.team.ID)
	suite.NoError(err)
	suite.Len(members, 2)
}

// TestGameCreateDefaults tests period directions and the initial lineup
func (suite *StatsIntegrationTestSuite) TestGameCreateDefaults() {
	suite.createPlayer("Anna")
	suite.createPlayer("Britt")
	sub, err := suite.players.Create(suite.owner.ID, suite.team.ID, &service.CreatePlayerRequest{
		Name: "Cleo",
		Type: models.PlayerTypeSubstitute,
	})
	suite.Require().NoError(err)

	game := suite.createGame()

	periods, err := suite.games.GetPeriods(suite.owner.ID, game.ID)
	suite.NoError(err)
	suite.Require().Len(periods, 3)
	suite.Equal(models.AttackingDirectionRight, periods[0].AttackingDirection)
	suite.Equal(models.AttackingDirectionLeft, periods[1].AttackingDirection)
	suite.Equal(models.AttackingDirectionRight, periods[2].AttackingDirection)

	gamePlayers, err := suite.games.GetGamePlayers(suite.owner.ID, game.ID)
	suite.NoError(err)
	suite.Require().Len(gamePlayers, 3)
	for _, gp := range gamePlayers {
		if gp.PlayerID == sub.ID {
			suite.False(gp.Included, "substitutes start excluded")
		} else {
			suite.True(gp.Included, "team players start included")
		}
	}
}

// TestSetDirectionsRecomputes tests that editing one period flips the others
func (suite *StatsIntegrationTestSuite) TestSetDirectionsRecomputes() {
	game := suite.createGame()

	periods, err := suite.games.SetDirections(suite.owner.ID, game.ID, &service.SetDirectionsRequest{
		PeriodNumber:       2,
		AttackingDirection: models.AttackingDirectionRight,
	})
	suite.NoError(err)
	suite.Require().Len(periods, 3)
	suite.Equal(models.AttackingDirectionLeft, periods[0].AttackingDirection)
	suite.Equal(models.AttackingDirectionRight, periods[1].AttackingDirection)
	suite.Equal(models.AttackingDirectionLeft, periods[2].AttackingDirection)
}

// TestShotGuards tests the referential checks on shot recording
func (suite *StatsIntegrationTestSuite) TestShotGuards() {
	game := suite.createGame()
	periods, err := suite.games.GetPeriods(suite.owner.ID, game.ID)
	suite.Require().NoError(err)

	// Period from a different game is rejected
	otherGame := suite.createGame()
	otherPeriods, err := suite.games.GetPeriods(suite.owner.ID, otherGame.ID)
	suite.Require().NoError(err)

	_, err = suite.shots.Create(suite.owner.ID, game.ID, &service.CreateShotRequest{
		PeriodID: otherPeriods[0].ID,
		X:        0.4, Y: 0.6,
	})
	suite.ErrorIs(err, apperrors.ErrPeriodNotInGame)

	// Shooter from another team is rejected
	otherTeam, err := suite.teams.Create(suite.outsider.ID, &service.CreateTeamRequest{Name: "Polar Bears"})
	suite.Require().NoError(err)
	foreign, err := suite.players.Create(suite.outsider.ID, otherTeam.ID, &service.CreatePlayerRequest{Name: "Dana"})
	suite.Require().NoError(err)

	_, err = suite.shots.Create(suite.owner.ID, game.ID, &service.CreateShotRequest{
		PeriodID:        periods[0].ID,
		ShooterPlayerID: &foreign.ID,
		X:               0.4, Y: 0.6,
	})
	suite.ErrorIs(err, apperrors.ErrPlayerNotOnTeam)

	// Non-members cannot record shots at all
	_, err = suite.shots.Create(suite.outsider.ID, game.ID, &service.CreateShotRequest{
		PeriodID: periods[0].ID,
		X:        0.4, Y: 0.6,
	})
	suite.ErrorIs(err, apperrors.ErrNotTeamMember)
}

// TestFaceoffLifecycle tests the counter invariant across create, increment and update
func (suite *StatsIntegrationTestSuite) TestFaceoffLifecycle() {
	player := suite.createPlayer("Anna")
	game := suite.createGame()

	_, err := suite.faceoffs.Create(suite.owner.ID, game.ID, &service.CreateFaceoffRequest{
		PlayerID: player.ID,
		Taken:    1,
		Won:      2,
	})
	suite.ErrorIs(err, apperrors.ErrWonExceedsTaken)

	faceoff, err := suite.faceoffs.Create(suite.owner.ID, game.ID, &service.CreateFaceoffRequest{
		PlayerID: player.ID,
		Taken:    2,
		Won:      1,
	})
	suite.Require().NoError(err)

	// One row per player per game
	_, err = suite.faceoffs.Create(suite.owner.ID, game.ID, &service.CreateFaceoffRequest{
		PlayerID: player.ID,
	})
	suite.ErrorIs(err, apperrors.ErrFaceoffExists)

	// A won outcome bumps both counters
	updated, err := suite.faceoffs.Increment(suite.owner.ID, faceoff.ID, &service.IncrementFaceoffRequest{Won: true})
	suite.NoError(err)
	suite.Equal(3, updated.Taken)
	suite.Equal(2, updated.Won)

	// A lost outcome bumps only taken
	updated, err = suite.faceoffs.Increment(suite.owner.ID, faceoff.ID, &service.IncrementFaceoffRequest{Won: false})
	suite.NoError(err)
	suite.Equal(4, updated.Taken)
	suite.Equal(2, updated.Won)

	_, err = suite.faceoffs.Update(suite.owner.ID, faceoff.ID, &service.UpdateFaceoffRequest{
		Taken: 1,
		Won:   2,
	})
	suite.ErrorIs(err, apperrors.ErrWonExceedsTaken)
}

// TestDeletionGuards tests that shots pin their game and player
func (suite *StatsIntegrationTestSuite) TestDeletionGuards() {
	player := suite.createPlayer("Anna")
	game := suite.createGame()
	periods, err := suite.games.GetPeriods(suite.owner.ID, game.ID)
	suite.Require().NoError(err)

	_, err = suite.shots.Create(suite.owner.ID, game.ID, &service.CreateShotRequest{
		PeriodID:        periods[0].ID,
		ShooterPlayerID: &player.ID,
		X:               0.3, Y: 0.7,
	})
	suite.Require().NoError(err)

	err = suite.games.Delete(suite.owner.ID, game.ID)
	suite.ErrorIs(err, apperrors.ErrGameHasShots)

	err = suite.players.Delete(suite.owner.ID, player.ID)
	suite.ErrorIs(err, apperrors.ErrPlayerHasShots)

	deleted, err := suite.shots.DeleteByGame(suite.owner.ID, game.ID, nil)
	suite.NoError(err)
	suite.Equal(int64(1), deleted)

	suite.NoError(suite.games.Delete(suite.owner.ID, game.ID))
	suite.NoError(suite.players.Delete(suite.owner.ID, player.ID))
}

// TestAnalytics tests aggregation and the reconciliation of the two goal
// tracking mechanisms.
func (suite *StatsIntegrationTestSuite) TestAnalytics() {
	shooter := suite.createPlayer("Anna")
	assister := suite.createPlayer("Britt")
	game := suite.createGame()
	periods, err := suite.games.GetPeriods(suite.owner.ID, game.ID)
	suite.Require().NoError(err)

	// Seven shots by the shooter, three of them scored
	for i := 0; i < 7; i++ {
		req := &service.CreateShotRequest{
			PeriodID:        periods[i%3].ID,
			ShooterPlayerID: &shooter.ID,
			X:               0.5, Y: 0.5,
			Scored: i < 3,
		}
		_, err := suite.shots.Create(suite.owner.ID, game.ID, req)
		suite.Require().NoError(err)
	}
	// One opponent goal
	_, err = suite.shots.Create(suite.owner.ID, game.ID, &service.CreateShotRequest{
		PeriodID:      periods[0].ID,
		X:             0.1, Y: 0.9,
		Scored:        true,
		ScoredAgainst: true,
	})
	suite.Require().NoError(err)

	// Only two of the three scored shots got explicit goal records; the
	// larger count must win.
	for i := 0; i < 2; i++ {
		_, err := suite.goals.Create(suite.owner.ID, game.ID, &service.CreateGoalRequest{
			PeriodNumber:    i + 1,
			ScorerPlayerID:  shooter.ID,
			Assist1PlayerID: &assister.ID,
		})
		suite.Require().NoError(err)
	}

	_, err = suite.faceoffs.Create(suite.owner.ID, game.ID, &service.CreateFaceoffRequest{
		PlayerID: shooter.ID,
		Taken:    4,
		Won:      2,
	})
	suite.Require().NoError(err)

	gameStats, err := suite.analytics.GetGameAnalytics(suite.owner.ID, game.ID)
	suite.NoError(err)
	suite.Equal(7, gameStats.ShotsFor)
	suite.Equal(1, gameStats.ShotsAgainst)
	suite.Equal(3, gameStats.GoalsFor)
	suite.Equal(1, gameStats.GoalsAgainst)
	suite.InDelta(42.86, gameStats.ShootingPercentage, 0.001)
	suite.Require().Len(gameStats.Periods, 3)

	// Shots landed in periods round-robin, one scored shot in each
	suite.Equal(3, gameStats.Periods[0].ShotsFor)
	suite.Equal(2, gameStats.Periods[1].ShotsFor)
	suite.Equal(2, gameStats.Periods[2].ShotsFor)
	suite.Equal(1, gameStats.Periods[0].ShotsAgainst)
	suite.Equal(1, gameStats.Periods[0].GoalsAgainst)
	for i := 0; i < 3; i++ {
		suite.Equal(1, gameStats.Periods[i].GoalsFor, "period %d", i+1)
	}

	teamStats, err := suite.analytics.GetTeamAnalytics(suite.owner.ID, suite.team.ID)
	suite.NoError(err)
	suite.Equal(1, teamStats.Games)
	suite.Equal(7, teamStats.ShotsFor)
	suite.Equal(3, teamStats.GoalsFor)
	suite.InDelta(42.86, teamStats.ShootingPercentage, 0.001)

	playerStats, err := suite.analytics.GetTeamPlayerAnalytics(suite.owner.ID, suite.team.ID)
	suite.NoError(err)
	byID := make(map[uuid.UUID]service.PlayerAnalytics, len(playerStats))
	for _, ps := range playerStats {
		byID[ps.PlayerID] = ps
	}

	shooterStats := byID[shooter.ID]
	suite.Equal(7, shooterStats.Shots)
	suite.Equal(3, shooterStats.Goals)
	suite.InDelta(42.86, shooterStats.ShootingPercentage, 0.001)
	suite.Equal(4, shooterStats.FaceoffsTaken)
	suite.Equal(2, shooterStats.FaceoffsWon)
	suite.InDelta(50, shooterStats.FaceoffPercentage, 0.001)

	assisterStats := byID[assister.ID]
	suite.Equal(2, assisterStats.Assists)
	suite.Equal(0, assisterStats.Shots)
}

// TestGameAnalyticsGoalRecordsOnly tests the per-period breakdown when goals
// are tracked through goal records alone, without any scored shots.
func (suite *StatsIntegrationTestSuite) TestGameAnalyticsGoalRecordsOnly() {
	scorer := suite.createPlayer("Anna")
	game := suite.createGame()

	for i := 0; i < 2; i++ {
		_, err := suite.goals.Create(suite.owner.ID, game.ID, &service.CreateGoalRequest{
			PeriodNumber:   2,
			ScorerPlayerID: scorer.ID,
		})
		suite.Require().NoError(err)
	}

	gameStats, err := suite.analytics.GetGameAnalytics(suite.owner.ID, game.ID)
	suite.NoError(err)
	suite.Equal(0, gameStats.ShotsFor)
	suite.Equal(2, gameStats.GoalsFor)
	suite.Require().Len(gameStats.Periods, 3)
	suite.Equal(0, gameStats.Periods[0].GoalsFor)
	suite.Equal(2, gameStats.Periods[1].GoalsFor)
	suite.Equal(0, gameStats.Periods[2].GoalsFor)
}

// TestGoalGuards tests the referential checks on goal recording
func (suite *StatsIntegrationTestSuite) TestGoalGuards() {
	scorer := suite.createPlayer("Anna")
	game := suite.createGame()

	otherTeam, err := suite.teams.Create(suite.outsider.ID, &service.CreateTeamRequest{Name: "Polar Bears"})
	suite.Require().NoError(err)
	foreign, err := suite.players.Create(suite.outsider.ID, otherTeam.ID, &service.CreatePlayerRequest{Name: "Dana"})
	suite.Require().NoError(err)

	// Scorer from another team is rejected
	_, err = suite.goals.Create(suite.owner.ID, game.ID, &service.CreateGoalRequest{
		PeriodNumber:   1,
		ScorerPlayerID: foreign.ID,
	})
	suite.ErrorIs(err, apperrors.ErrPlayerNotOnTeam)

	// A foreign assister is rejected even when the scorer is valid
	_, err = suite.goals.Create(suite.owner.ID, game.ID, &service.CreateGoalRequest{
		PeriodNumber:    1,
		ScorerPlayerID:  scorer.ID,
		Assist1PlayerID: &foreign.ID,
	})
	suite.ErrorIs(err, apperrors.ErrPlayerNotOnTeam)

	// Non-members cannot record goals
	_, err = suite.goals.Create(suite.outsider.ID, game.ID, &service.CreateGoalRequest{
		PeriodNumber:   1,
		ScorerPlayerID: scorer.ID,
	})
	suite.ErrorIs(err, apperrors.ErrNotTeamMember)
}

// TestFaceoffGuards tests the referential checks on faceoff recording
func (suite *StatsIntegrationTestSuite) TestFaceoffGuards() {
	player := suite.createPlayer("Anna")
	game := suite.createGame()

	otherTeam, err := suite.teams.Create(suite.outsider.ID, &service.CreateTeamRequest{Name: "Polar Bears"})
	suite.Require().NoError(err)
	foreign, err := suite.players.Create(suite.outsider.ID, otherTeam.ID, &service.CreatePlayerRequest{Name: "Dana"})
	suite.Require().NoError(err)

	// Player from another team is rejected
	_, err = suite.faceoffs.Create(suite.owner.ID, game.ID, &service.CreateFaceoffRequest{
		PlayerID: foreign.ID,
		Taken:    1,
	})
	suite.ErrorIs(err, apperrors.ErrPlayerNotOnTeam)

	// Non-members cannot record faceoffs
	_, err = suite.faceoffs.Create(suite.outsider.ID, game.ID, &service.CreateFaceoffRequest{
		PlayerID: player.ID,
		Taken:    1,
	})
	suite.ErrorIs(err, apperrors.ErrNotTeamMember)
}

// TestDeleteConfirmationMessages tests the two-step deletion prompt and its
// last-member variant.
func (suite *StatsIntegrationTestSuite) TestDeleteConfirmationMessages() {
	// The owner is the only member, so the prompt warns about that
	_, err := suite.teams.Delete(suite.owner.ID, suite.team.ID, false)
	suite.True(apperrors.IsConfirmationRequired(err))
	suite.Contains(err.Error(), "only member")

	// With a second member the prompt switches to the shared warning
	_, err = suite.teams.Join(suite.outsider.ID, suite.team.Code)
	suite.Require().NoError(err)

	_, err = suite.teams.Delete(suite.owner.ID, suite.team.ID, false)
	suite.True(apperrors.IsConfirmationRequired(err))
	suite.Contains(err.Error(), "all members")
	suite.NotContains(err.Error(), "only member")

	// Confirming actually deletes
	result, err := suite.teams.Delete(suite.owner.ID, suite.team.ID, true)
	suite.NoError(err)
	suite.True(result.Deleted)
}

// TestStatsIntegrationTestSuite runs the test suite
func TestStatsIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StatsIntegrationTestSuite))
}
