package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/api/handlers"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"
	apperrors "github.com/CyberToe/HockeyAnalyst-sub000/internal/errors"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/mocks"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/service"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.userID = uuid.New()

	// Create handler with mock service
	suite.handler = handlers.NewTeamHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Stand in for the auth middleware so handlers see an authenticated user
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	})

	// Register routes
	api := suite.httpSuite.Router.Group("/api")
	teams := api.Group("/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.GetTeams)
		teams.POST("/join", suite.handler.JoinTeam)
		teams.GET("/:teamId", suite.handler.GetTeam)
		teams.PUT("/:teamId", suite.handler.UpdateTeam)
		teams.DELETE("/:teamId", suite.handler.DeleteTeam)
		teams.POST("/:teamId/leave", suite.handler.LeaveTeam)
		teams.GET("/:teamId/members", suite.handler.GetMembers)
		teams.PUT("/:teamId/members/:userId/role", suite.handler.UpdateMemberRole)
		teams.DELETE("/:teamId/members/:userId", suite.handler.RemoveMember)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *TeamHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

// TestCreateTeam tests the CreateTeam handler
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		requestBody := map[string]interface{}{
			"name": "Ice Hawks",
		}

		expectedTeam := &models.Team{
			BaseModel: models.BaseModel{ID: teamID},
			Name:      "Ice Hawks",
			Code:      "A7KQW2X",
		}

		suite.mockService.EXPECT().
			Create(suite.userID, gomock.Any()).
			Return(expectedTeam, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response models.Team
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedTeam.Name, response.Name)
		assert.Equal(t, expectedTeam.Code, response.Code)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("POST", "/api/teams")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetTeam tests the GetTeam handler
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		expectedTeam := &models.Team{
			BaseModel: models.BaseModel{ID: teamID},
			Name:      "Ice Hawks",
		}

		suite.mockService.EXPECT().
			Get(suite.userID, teamID).
			Return(expectedTeam, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/"+teamID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response models.Team
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedTeam.Name, response.Name)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Get(suite.userID, teamID).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/"+teamID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})

	suite.T().Run("Not A Member", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Get(suite.userID, teamID).
			Return(nil, apperrors.ErrNotTeamMember).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/"+teamID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "not a member")
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestJoinTeam tests the JoinTeam handler
func (suite *TeamHandlerTestSuite) TestJoinTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		requestBody := map[string]interface{}{
			"teamCode": "a7kqw2x",
		}

		expectedTeam := &models.Team{
			BaseModel: models.BaseModel{ID: teamID},
			Name:      "Ice Hawks",
			Code:      "A7KQW2X",
		}

		suite.mockService.EXPECT().
			Join(suite.userID, "a7kqw2x").
			Return(expectedTeam, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams/join", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response models.Team
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedTeam.Code, response.Code)
	})

	suite.T().Run("Invalid Code", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"teamCode": "NOPE",
		}

		suite.mockService.EXPECT().
			Join(suite.userID, "NOPE").
			Return(nil, apperrors.ErrInvalidTeamCode).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams/join", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team code")
	})

	suite.T().Run("Already A Member", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"teamCode": "A7KQW2X",
		}

		suite.mockService.EXPECT().
			Join(suite.userID, "A7KQW2X").
			Return(nil, apperrors.ErrMembershipExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams/join", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Missing Code", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams/join", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestDeleteTeam tests the DeleteTeam handler
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.T().Run("Confirmation Required", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Delete(suite.userID, teamID, false).
			Return(nil, apperrors.NewConfirmationRequiredError("confirm team deletion")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/teams/"+teamID.String(), nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, true, response["confirmationRequired"])
	})

	suite.T().Run("Confirmed Delete", func(t *testing.T) {
		teamID := uuid.New()
		requestBody := map[string]interface{}{
			"confirm": true,
		}

		suite.mockService.EXPECT().
			Delete(suite.userID, teamID, true).
			Return(&service.DeleteTeamResult{Deleted: true, Message: "Team deleted"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/teams/"+teamID.String(), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.DeleteTeamResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.Deleted)
		assert.False(t, response.Left)
	})

	suite.T().Run("Non Admin Leaves Instead", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Delete(suite.userID, teamID, false).
			Return(&service.DeleteTeamResult{Left: true, Message: "You have left the team"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/teams/"+teamID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.DeleteTeamResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.Left)
		assert.False(t, response.Deleted)
	})
}

// TestLeaveTeam tests the LeaveTeam handler
func (suite *TeamHandlerTestSuite) TestLeaveTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Leave(suite.userID, teamID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams/"+teamID.String()+"/leave", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Last Admin", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Leave(suite.userID, teamID).
			Return(apperrors.ErrLastAdmin).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams/"+teamID.String()+"/leave", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "at least one admin")
	})
}

// TestUpdateMemberRole tests the UpdateMemberRole handler
func (suite *TeamHandlerTestSuite) TestUpdateMemberRole() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		memberUserID := uuid.New()
		requestBody := map[string]interface{}{
			"role": "admin",
		}

		expectedMember := &models.TeamMember{
			TeamID: teamID,
			UserID: memberUserID,
			Role:   models.TeamRoleAdmin,
		}

		suite.mockService.EXPECT().
			UpdateMemberRole(suite.userID, teamID, memberUserID, models.TeamRoleAdmin).
			Return(expectedMember, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/teams/"+teamID.String()+"/members/"+memberUserID.String()+"/role", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response models.TeamMember
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.TeamRoleAdmin, response.Role)
	})

	suite.T().Run("Demoting Last Admin", func(t *testing.T) {
		teamID := uuid.New()
		memberUserID := uuid.New()
		requestBody := map[string]interface{}{
			"role": "member",
		}

		suite.mockService.EXPECT().
			UpdateMemberRole(suite.userID, teamID, memberUserID, models.TeamRoleMember).
			Return(nil, apperrors.ErrLastAdmin).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/teams/"+teamID.String()+"/members/"+memberUserID.String()+"/role", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "at least one admin")
	})

	suite.T().Run("Not Admin", func(t *testing.T) {
		teamID := uuid.New()
		memberUserID := uuid.New()
		requestBody := map[string]interface{}{
			"role": "admin",
		}

		suite.mockService.EXPECT().
			UpdateMemberRole(suite.userID, teamID, memberUserID, models.TeamRoleAdmin).
			Return(nil, apperrors.ErrNotTeamAdmin).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/teams/"+teamID.String()+"/members/"+memberUserID.String()+"/role", requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestRemoveMember tests the RemoveMember handler
func (suite *TeamHandlerTestSuite) TestRemoveMember() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		memberUserID := uuid.New()

		suite.mockService.EXPECT().
			RemoveMember(suite.userID, teamID, memberUserID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/teams/"+teamID.String()+"/members/"+memberUserID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Self Removal", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			RemoveMember(suite.userID, teamID, suite.userID).
			Return(apperrors.ErrSelfRemoval).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/teams/"+teamID.String()+"/members/"+suite.userID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "leave")
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
