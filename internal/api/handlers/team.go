package handlers

import (
	"net/http"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for teams and memberships
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// joinTeamRequest carries the join code
type joinTeamRequest struct {
	TeamCode string `json:"teamCode" binding:"required"`
}

// deleteTeamRequest carries the confirmation flag for team deletion
type deleteTeamRequest struct {
	Confirm bool `json:"confirm"`
}

// updateRoleRequest carries the new role for a member
type updateRoleRequest struct {
	Role models.TeamRole `json:"role" binding:"required"`
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Create a team with a fresh join code; the creator becomes admin
// @Tags teams
// @Accept json
// @Produce json
// @Param request body service.CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team "Team created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// GetTeams handles GET /teams
// @Summary List my teams
// @Description List the teams the authenticated user belongs to
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team "Teams"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) GetTeams(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	teams, err := h.teamService.GetForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:teamId
// @Summary Get a team
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} models.Team "Team"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	team, err := h.teamService.Get(userID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PUT /teams/:teamId
// @Summary Update a team
// @Description Change team name or image, admin only
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param request body service.UpdateTeamRequest true "Fields to change"
// @Success 200 {object} models.Team "Updated team"
// @Failure 403 {object} map[string]interface{} "Admin role required"
// @Security BearerAuth
// @Router /teams/{teamId} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Update(userID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:teamId
// @Summary Delete a team or leave it
// @Description Admins must confirm; without confirm=true a prompt is returned. Non-admins leave the team instead.
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param request body deleteTeamRequest false "Confirmation flag"
// @Success 200 {object} service.DeleteTeamResult "Outcome"
// @Failure 400 {object} map[string]interface{} "Confirmation required"
// @Security BearerAuth
// @Router /teams/{teamId} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	var req deleteTeamRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.teamService.Delete(userID, teamID, req.Confirm)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// JoinTeam handles POST /teams/join
// @Summary Join a team by code
// @Description Codes are matched case-insensitively
// @Tags teams
// @Accept json
// @Produce json
// @Param request body joinTeamRequest true "Join code"
// @Success 200 {object} models.Team "Joined team"
// @Failure 400 {object} map[string]interface{} "Invalid code or already a member"
// @Security BearerAuth
// @Router /teams/join [post]
func (h *TeamHandler) JoinTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req joinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Join(userID, req.TeamCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// LeaveTeam handles POST /teams/:teamId/leave
// @Summary Leave a team
// @Description The last admin cannot leave while the team is live
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} map[string]interface{} "Left the team"
// @Failure 400 {object} map[string]interface{} "Last admin cannot leave"
// @Security BearerAuth
// @Router /teams/{teamId}/leave [post]
func (h *TeamHandler) LeaveTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	if err := h.teamService.Leave(userID, teamID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "You have left the team"})
}

// GetMembers handles GET /teams/:teamId/members
// @Summary List team members
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} models.TeamMember "Members"
// @Security BearerAuth
// @Router /teams/{teamId}/members [get]
func (h *TeamHandler) GetMembers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	members, err := h.teamService.ListMembers(userID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// UpdateMemberRole handles PUT /teams/:teamId/members/:userId/role
// @Summary Change a member's role
// @Description Admin only; demoting the last admin is rejected
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param userId path string true "Member user ID (UUID)"
// @Param request body updateRoleRequest true "New role"
// @Success 200 {object} models.TeamMember "Updated membership"
// @Failure 400 {object} map[string]interface{} "Last admin"
// @Security BearerAuth
// @Router /teams/{teamId}/members/{userId}/role [put]
func (h *TeamHandler) UpdateMemberRole(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	memberUserID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.teamService.UpdateMemberRole(userID, teamID, memberUserID, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /teams/:teamId/members/:userId
// @Summary Remove a member
// @Description Admin only; self-removal must go through leave
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param userId path string true "Member user ID (UUID)"
// @Success 200 {object} map[string]interface{} "Member removed"
// @Failure 400 {object} map[string]interface{} "Self-removal or last admin"
// @Security BearerAuth
// @Router /teams/{teamId}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	memberUserID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(userID, teamID, memberUserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}
