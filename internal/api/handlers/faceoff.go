package handlers

import (
	"net/http"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// FaceoffHandler handles HTTP requests for faceoff counters
type FaceoffHandler struct {
	faceoffService service.FaceoffServiceInterface
}

// NewFaceoffHandler creates a new faceoff handler
func NewFaceoffHandler(faceoffService service.FaceoffServiceInterface) *FaceoffHandler {
	return &FaceoffHandler{faceoffService: faceoffService}
}

// CreateFaceoff handles POST /faceoffs/games/:gameId
// @Summary Create a player's faceoff counters
// @Description One row per player per game; won must not exceed taken
// @Tags faceoffs
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Param request body service.CreateFaceoffRequest true "Counter data"
// @Success 201 {object} models.Faceoff "Faceoff row created"
// @Failure 400 {object} map[string]interface{} "Duplicate row or won > taken"
// @Security BearerAuth
// @Router /faceoffs/games/{gameId} [post]
func (h *FaceoffHandler) CreateFaceoff(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}

	var req service.CreateFaceoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faceoff, err := h.faceoffService.Create(userID, gameID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, faceoff)
}

// GetFaceoffs handles GET /faceoffs/games/:gameId
// @Summary List a game's faceoff rows
// @Tags faceoffs
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Success 200 {array} models.Faceoff "Faceoff rows"
// @Security BearerAuth
// @Router /faceoffs/games/{gameId} [get]
func (h *FaceoffHandler) GetFaceoffs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}

	faceoffs, err := h.faceoffService.GetByGame(userID, gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, faceoffs)
}

// IncrementFaceoff handles POST /faceoffs/:faceoffId/increment
// @Summary Register one faceoff outcome
// @Description Taken always goes up by one, won only when the faceoff was won
// @Tags faceoffs
// @Accept json
// @Produce json
// @Param faceoffId path string true "Faceoff ID (UUID)"
// @Param request body service.IncrementFaceoffRequest true "Outcome"
// @Success 200 {object} models.Faceoff "Updated counters"
// @Security BearerAuth
// @Router /faceoffs/{faceoffId}/increment [post]
func (h *FaceoffHandler) IncrementFaceoff(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	faceoffID, ok := parseUUIDParam(c, "faceoffId")
	if !ok {
		return
	}

	var req service.IncrementFaceoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faceoff, err := h.faceoffService.Increment(userID, faceoffID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, faceoff)
}

// UpdateFaceoff handles PUT /faceoffs/:faceoffId
// @Summary Overwrite faceoff counters
// @Description Rejected when won exceeds taken
// @Tags faceoffs
// @Accept json
// @Produce json
// @Param faceoffId path string true "Faceoff ID (UUID)"
// @Param request body service.UpdateFaceoffRequest true "New counters"
// @Success 200 {object} models.Faceoff "Updated counters"
// @Failure 400 {object} map[string]interface{} "won > taken"
// @Security BearerAuth
// @Router /faceoffs/{faceoffId} [put]
func (h *FaceoffHandler) UpdateFaceoff(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	faceoffID, ok := parseUUIDParam(c, "faceoffId")
	if !ok {
		return
	}

	var req service.UpdateFaceoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faceoff, err := h.faceoffService.Update(userID, faceoffID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, faceoff)
}

// DeleteFaceoff handles DELETE /faceoffs/:faceoffId
// @Summary Delete a faceoff row
// @Tags faceoffs
// @Produce json
// @Param faceoffId path string true "Faceoff ID (UUID)"
// @Success 200 {object} map[string]interface{} "Faceoff deleted"
// @Security BearerAuth
// @Router /faceoffs/{faceoffId} [delete]
func (h *FaceoffHandler) DeleteFaceoff(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	faceoffID, ok := parseUUIDParam(c, "faceoffId")
	if !ok {
		return
	}

	if err := h.faceoffService.Delete(userID, faceoffID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Faceoff deleted"})
}
