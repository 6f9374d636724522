//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"
	apperrors "github.com/CyberToe/HockeyAnalyst-sub000/internal/errors"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TeamMemberRepositoryTestSuite tests the TeamMemberRepository
type TeamMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamMemberRepository
	teamRepo      *TeamRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamMemberRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamMemberRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	return user
}

// createTeam creates a team whose creator is already its admin
func (suite *TeamMemberRepositoryTestSuite) createTeam(admin *models.User) *models.Team {
	team := suite.factories.Team.WithCreator(admin.ID)
	suite.NoError(suite.teamRepo.CreateWithAdmin(team, admin.ID))
	return team
}

// TestDeleteGuardedLastAdmin tests that the sole admin cannot be removed
func (suite *TeamMemberRepositoryTestSuite) TestDeleteGuardedLastAdmin() {
	admin := suite.createUser()
	member := suite.createUser()
	team := suite.createTeam(admin)
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.Create(team.ID, member.ID)))

	err := suite.repo.DeleteGuarded(team.ID, admin.ID)
	suite.ErrorIs(err, apperrors.ErrLastAdmin)

	// The membership must survive the rejected delete
	_, err = suite.repo.Get(team.ID, admin.ID)
	suite.NoError(err)
}

// TestDeleteGuardedSoleMember tests that even an admin alone on the team cannot leave
func (suite *TeamMemberRepositoryTestSuite) TestDeleteGuardedSoleMember() {
	admin := suite.createUser()
	team := suite.createTeam(admin)

	err := suite.repo.DeleteGuarded(team.ID, admin.ID)
	suite.ErrorIs(err, apperrors.ErrLastAdmin)
}

// TestDeleteGuardedWithSecondAdmin tests that an admin can leave when another admin remains
func (suite *TeamMemberRepositoryTestSuite) TestDeleteGuardedWithSecondAdmin() {
	admin1 := suite.createUser()
	admin2 := suite.createUser()
	team := suite.createTeam(admin1)
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.Admin(team.ID, admin2.ID)))

	err := suite.repo.DeleteGuarded(team.ID, admin1.ID)
	suite.NoError(err)

	count, err := suite.repo.CountMembers(team.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestDeleteGuardedRegularMember tests that regular members can always be removed
func (suite *TeamMemberRepositoryTestSuite) TestDeleteGuardedRegularMember() {
	admin := suite.createUser()
	member := suite.createUser()
	team := suite.createTeam(admin)
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.Create(team.ID, member.ID)))

	err := suite.repo.DeleteGuarded(team.ID, member.ID)
	suite.NoError(err)
}

// TestUpdateRoleGuardedDemoteLastAdmin tests that the last admin cannot be demoted
func (suite *TeamMemberRepositoryTestSuite) TestUpdateRoleGuardedDemoteLastAdmin() {
	admin := suite.createUser()
	member := suite.createUser()
	team := suite.createTeam(admin)
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.Create(team.ID, member.ID)))

	err := suite.repo.UpdateRoleGuarded(team.ID, admin.ID, models.TeamRoleMember)
	suite.ErrorIs(err, apperrors.ErrLastAdmin)

	got, err := suite.repo.Get(team.ID, admin.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleAdmin, got.Role)
}

// TestUpdateRoleGuardedPromoteThenDemote tests demotion once a second admin exists
func (suite *TeamMemberRepositoryTestSuite) TestUpdateRoleGuardedPromoteThenDemote() {
	admin := suite.createUser()
	member := suite.createUser()
	team := suite.createTeam(admin)
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.Create(team.ID, member.ID)))

	suite.NoError(suite.repo.UpdateRoleGuarded(team.ID, member.ID, models.TeamRoleAdmin))
	suite.NoError(suite.repo.UpdateRoleGuarded(team.ID, admin.ID, models.TeamRoleMember))

	got, err := suite.repo.Get(team.ID, admin.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleMember, got.Role)
}

// TestGetByTeamOrdering tests that memberships come back with user details
func (suite *TeamMemberRepositoryTestSuite) TestGetByTeamOrdering() {
	admin := suite.createUser()
	member := suite.createUser()
	team := suite.createTeam(admin)
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.Create(team.ID, member.ID)))

	members, err := suite.repo.GetByTeam(team.ID)
	suite.NoError(err)
	suite.Len(members, 2)
	for _, m := range members {
		suite.NotNil(m.User)
	}
}

// TestTeamMemberRepositoryTestSuite runs the test suite
func TestTeamMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberRepositoryTestSuite))
}
