package handlers

import (
	"net/http"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles HTTP requests for aggregated statistics
type AnalyticsHandler struct {
	analyticsService service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetTeamAnalytics handles GET /analytics/teams/:teamId
// @Summary Team totals
// @Description Games, shots and goals for and against, and shooting percentage
// @Tags analytics
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamAnalytics "Team totals"
// @Security BearerAuth
// @Router /analytics/teams/{teamId} [get]
func (h *AnalyticsHandler) GetTeamAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	analytics, err := h.analyticsService.GetTeamAnalytics(userID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// GetTeamPlayerAnalytics handles GET /analytics/teams/:teamId/players
// @Summary Per-player statistics
// @Description Shots, goals, assists, shooting percentage and faceoff numbers per player
// @Tags analytics
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} service.PlayerAnalytics "Per-player statistics"
// @Security BearerAuth
// @Router /analytics/teams/{teamId}/players [get]
func (h *AnalyticsHandler) GetTeamPlayerAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	analytics, err := h.analyticsService.GetTeamPlayerAnalytics(userID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// GetGameAnalytics handles GET /analytics/games/:gameId
// @Summary Game statistics
// @Description Game totals with a per-period breakdown
// @Tags analytics
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Success 200 {object} service.GameAnalytics "Game statistics"
// @Security BearerAuth
// @Router /analytics/games/{gameId} [get]
func (h *AnalyticsHandler) GetGameAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}

	analytics, err := h.analyticsService.GetGameAnalytics(userID, gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
