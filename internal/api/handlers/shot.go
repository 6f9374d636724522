package handlers

import (
	"net/http"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShotHandler handles HTTP requests for shots
type ShotHandler struct {
	shotService service.ShotServiceInterface
}

// NewShotHandler creates a new shot handler
func NewShotHandler(shotService service.ShotServiceInterface) *ShotHandler {
	return &ShotHandler{shotService: shotService}
}

// CreateShot handles POST /shots/games/:gameId
// @Summary Record a shot
// @Description The period must belong to the game and the shooter to the game's team
// @Tags shots
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Param request body service.CreateShotRequest true "Shot data"
// @Success 201 {object} models.Shot "Shot recorded"
// @Failure 400 {object} map[string]interface{} "Cross-team reference"
// @Security BearerAuth
// @Router /shots/games/{gameId} [post]
func (h *ShotHandler) CreateShot(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}

	var req service.CreateShotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shot, err := h.shotService.Create(userID, gameID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shot)
}

// GetShots handles GET /shots/games/:gameId
// @Summary List a game's shots
// @Tags shots
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Success 200 {array} models.Shot "Shots in recording order"
// @Security BearerAuth
// @Router /shots/games/{gameId} [get]
func (h *ShotHandler) GetShots(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}

	shots, err := h.shotService.GetByGame(userID, gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shots)
}

// UpdateShot handles PUT /shots/:shotId
// @Summary Update a shot
// @Tags shots
// @Accept json
// @Produce json
// @Param shotId path string true "Shot ID (UUID)"
// @Param request body service.UpdateShotRequest true "Fields to change"
// @Success 200 {object} models.Shot "Updated shot"
// @Failure 404 {object} map[string]interface{} "Shot not found"
// @Security BearerAuth
// @Router /shots/{shotId} [put]
func (h *ShotHandler) UpdateShot(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	shotID, ok := parseUUIDParam(c, "shotId")
	if !ok {
		return
	}

	var req service.UpdateShotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shot, err := h.shotService.Update(userID, shotID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shot)
}

// DeleteShot handles DELETE /shots/:shotId
// @Summary Delete a shot
// @Tags shots
// @Produce json
// @Param shotId path string true "Shot ID (UUID)"
// @Success 200 {object} map[string]interface{} "Shot deleted"
// @Security BearerAuth
// @Router /shots/{shotId} [delete]
func (h *ShotHandler) DeleteShot(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	shotID, ok := parseUUIDParam(c, "shotId")
	if !ok {
		return
	}

	if err := h.shotService.Delete(userID, shotID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shot deleted"})
}

// DeleteShots handles DELETE /shots/games/:gameId
// @Summary Bulk delete a game's shots
// @Description Optionally scoped to one period via the period_id query parameter
// @Tags shots
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Param period_id query string false "Period ID (UUID)"
// @Success 200 {object} map[string]interface{} "Deleted count"
// @Security BearerAuth
// @Router /shots/games/{gameId} [delete]
func (h *ShotHandler) DeleteShots(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}

	var periodID *uuid.UUID
	if raw := c.Query("period_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period_id"})
			return
		}
		periodID = &id
	}

	deleted, err := h.shotService.DeleteByGame(userID, gameID, periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
