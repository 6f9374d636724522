package handlers

import (
	"net/http"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for roster players
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// CreatePlayer handles POST /players/teams/:teamId
// @Summary Add a player to the roster
// @Description The player is attached to every existing game as not included
// @Tags players
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param request body service.CreatePlayerRequest true "Player data"
// @Success 201 {object} models.Player "Player created"
// @Failure 400 {object} map[string]interface{} "Name or jersey number taken"
// @Security BearerAuth
// @Router /players/teams/{teamId} [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	var req service.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.Create(userID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

// GetPlayers handles GET /players/teams/:teamId
// @Summary List the team roster
// @Tags players
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} models.Player "Players"
// @Security BearerAuth
// @Router /players/teams/{teamId} [get]
func (h *PlayerHandler) GetPlayers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	players, err := h.playerService.GetByTeam(userID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

// UpdatePlayer handles PUT /players/:playerId
// @Summary Update a player
// @Tags players
// @Accept json
// @Produce json
// @Param playerId path string true "Player ID (UUID)"
// @Param request body service.UpdatePlayerRequest true "Fields to change"
// @Success 200 {object} models.Player "Updated player"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Security BearerAuth
// @Router /players/{playerId} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	playerID, ok := parseUUIDParam(c, "playerId")
	if !ok {
		return
	}

	var req service.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.Update(userID, playerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// DeletePlayer handles DELETE /players/:playerId
// @Summary Remove a player
// @Description Blocked while shots reference the player
// @Tags players
// @Produce json
// @Param playerId path string true "Player ID (UUID)"
// @Success 200 {object} map[string]interface{} "Player removed"
// @Failure 400 {object} map[string]interface{} "Player has recorded shots"
// @Security BearerAuth
// @Router /players/{playerId} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	playerID, ok := parseUUIDParam(c, "playerId")
	if !ok {
		return
	}

	if err := h.playerService.Delete(userID, playerID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Player removed"})
}
