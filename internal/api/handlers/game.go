package handlers

import (
	"net/http"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// GameHandler handles HTTP requests for games, periods and lineups
type GameHandler struct {
	gameService service.GameServiceInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService service.GameServiceInterface) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// CreateGame handles POST /games/teams/:teamId
// @Summary Create a game
// @Description Creates the game with three periods (right, left, right) and the initial lineup
// @Tags games
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param request body service.CreateGameRequest true "Game data"
// @Success 201 {object} models.Game "Game created"
// @Security BearerAuth
// @Router /games/teams/{teamId} [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	var req service.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.Create(userID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

// GetGames handles GET /games/teams/:teamId
// @Summary List a team's games
// @Tags games
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} models.Game "Games, newest first"
// @Security BearerAuth
// @Router /games/teams/{teamId} [get]
func (h *GameHandler) GetGames(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}

	games, err := h.gameService.GetByTeam(userID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetGame handles GET /games/:gameId
// @Summary Get a game
// @Tags games
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Success 200 {object} models.Game "Game with periods"
// @Failure 404 {object} map[string]interface{} "Game not found"
// @Security BearerAuth
// @Router /games/{gameId} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}

	game, err := h.gameService.Get(userID, gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// UpdateGame handles PUT /games/:gameId
// @Summary Update a game
// @Tags games
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Param request body service.UpdateGameRequest true "Fields to change"
// @Success 200 {object} models.Game "Updated game"
// @Security BearerAuth
// @Router /games/{gameId} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}

	var req service.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.Update(userID, gameID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// DeleteGame handles DELETE /games/:gameId
// @Summary Delete a game
// @Description Blocked while shots are recorded for the game
// @Tags games
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Success 200 {object} map[string]interface{} "Game deleted"
// @Failure 400 {object} map[string]interface{} "Game has recorded shots"
// @Security BearerAuth
// @Router /games/{gameId} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}

	if err := h.gameService.Delete(userID, gameID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

// GetPeriods handles GET /games/:gameId/periods
// @Summary List a game's periods
// @Tags games
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Success 200 {array} models.Period "Periods in order"
// @Security BearerAuth
// @Router /games/{gameId}/periods [get]
func (h *GameHandler) GetPeriods(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}

	periods, err := h.gameService.GetPeriods(userID, gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, periods)
}

// UpdatePeriod handles PUT /games/:gameId/periods/:periodId
// @Summary Update one period
// @Description Changing the attacking direction recomputes all three periods
// @Tags games
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Param periodId path string true "Period ID (UUID)"
// @Param request body service.UpdatePeriodRequest true "Fields to change"
// @Success 200 {array} models.Period "All periods after the update"
// @Failure 400 {object} map[string]interface{} "Period not in this game"
// @Security BearerAuth
// @Router /games/{gameId}/periods/{periodId} [put]
func (h *GameHandler) UpdatePeriod(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}
	periodID, ok := parseUUIDParam(c, "periodId")
	if !ok {
		return
	}

	var req service.UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	periods, err := h.gameService.UpdatePeriod(userID, gameID, periodID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, periods)
}

// SetDirections handles PUT /games/:gameId/periods
// @Summary Set attacking directions
// @Description Sets the direction of the named period and recomputes the other two
// @Tags games
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Param request body service.SetDirectionsRequest true "Edited period and direction"
// @Success 200 {array} models.Period "All periods after the update"
// @Security BearerAuth
// @Router /games/{gameId}/periods [put]
func (h *GameHandler) SetDirections(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}

	var req service.SetDirectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	periods, err := h.gameService.SetDirections(userID, gameID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, periods)
}

// GetGamePlayers handles GET /games/:gameId/players
// @Summary List the game lineup
// @Tags games
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Success 200 {array} models.GamePlayer "Lineup entries"
// @Security BearerAuth
// @Router /games/{gameId}/players [get]
func (h *GameHandler) GetGamePlayers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}

	gamePlayers, err := h.gameService.GetGamePlayers(userID, gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gamePlayers)
}

// UpdateGamePlayer handles PUT /games/:gameId/players/:playerId
// @Summary Update a lineup entry
// @Description Toggle inclusion or override the jersey number for this game
// @Tags games
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Param playerId path string true "Player ID (UUID)"
// @Param request body service.UpdateGamePlayerRequest true "Fields to change"
// @Success 200 {object} models.GamePlayer "Updated entry"
// @Security BearerAuth
// @Router /games/{gameId}/players/{playerId} [put]
func (h *GameHandler) UpdateGamePlayer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}
	playerID, ok := parseUUIDParam(c, "playerId")
	if !ok {
		return
	}

	var req service.UpdateGamePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gamePlayer, err := h.gameService.UpdateGamePlayer(userID, gameID, playerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gamePlayer)
}
