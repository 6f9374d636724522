//go:build integration
// +build integration

package repository

import (
	"strings"
	"testing"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	userRepo      *UserRepository
	memberRepo    *TeamMemberRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.memberRepo = NewTeamMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	return user
}

// TestCreateWithAdmin tests that the creator becomes an admin member
func (suite *TeamRepositoryTestSuite) TestCreateWithAdmin() {
	user := suite.createUser()
	team := suite.factories.Team.WithCreator(user.ID)

	err := suite.repo.CreateWithAdmin(team, user.ID)
	suite.NoError(err)

	member, err := suite.memberRepo.Get(team.ID, user.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleAdmin, member.Role)
}

// TestCreateDuplicateCode tests the unique constraint on join codes
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateCode() {
	user := suite.createUser()

	team1 := suite.factories.Team.WithCode("AAAAAA2")
	team1.CreatedByID = user.ID
	suite.NoError(suite.repo.CreateWithAdmin(team1, user.ID))

	team2 := suite.factories.Team.WithCode("AAAAAA2")
	team2.CreatedByID = user.ID

	err := suite.repo.CreateWithAdmin(team2, user.ID)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByCode tests case-insensitive code lookup
func (suite *TeamRepositoryTestSuite) TestGetByCode() {
	user := suite.createUser()
	team := suite.factories.Team.WithCode("A7KQW2X")
	team.CreatedByID = user.ID
	suite.NoError(suite.repo.CreateWithAdmin(team, user.ID))

	for _, code := range []string{"A7KQW2X", "a7kqw2x", "A7kqW2x"} {
		found, err := suite.repo.GetByCode(code)
		suite.NoError(err, "lookup with %q", code)
		suite.Equal(team.ID, found.ID)
	}

	_, err := suite.repo.GetByCode("ZZZZZZZ")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestSoftDelete tests that deleted teams disappear from reads but keep their code reserved
func (suite *TeamRepositoryTestSuite) TestSoftDelete() {
	user := suite.createUser()
	team := suite.factories.Team.WithCode("B8LRX3Y")
	team.CreatedByID = user.ID
	suite.NoError(suite.repo.CreateWithAdmin(team, user.ID))

	suite.NoError(suite.repo.SoftDelete(team.ID))

	_, err := suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByCode("B8LRX3Y")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	teams, err := suite.repo.GetForUser(user.ID)
	suite.NoError(err)
	suite.Empty(teams)

	// The code stays reserved so it is never handed out again
	exists, err := suite.repo.CodeExists(strings.ToLower("B8LRX3Y"))
	suite.NoError(err)
	suite.True(exists)
}

// TestGetForUser tests listing only the user's teams
func (suite *TeamRepositoryTestSuite) TestGetForUser() {
	user1 := suite.createUser()
	user2 := suite.createUser()

	team1 := suite.factories.Team.WithCreator(user1.ID)
	suite.NoError(suite.repo.CreateWithAdmin(team1, user1.ID))
	team2 := suite.factories.Team.WithCreator(user2.ID)
	suite.NoError(suite.repo.CreateWithAdmin(team2, user2.ID))

	teams, err := suite.repo.GetForUser(user1.ID)
	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(team1.ID, teams[0].ID)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
