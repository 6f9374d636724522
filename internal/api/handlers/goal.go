package handlers

import (
	"net/http"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// GoalHandler handles HTTP requests for goal records
type GoalHandler struct {
	goalService service.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService service.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoal handles POST /goals/games/:gameId
// @Summary Record a goal
// @Description Scorer and assisters must belong to the game's team
// @Tags goals
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Param request body service.CreateGoalRequest true "Goal data"
// @Success 201 {object} models.Goal "Goal recorded"
// @Failure 400 {object} map[string]interface{} "Cross-team reference"
// @Security BearerAuth
// @Router /goals/games/{gameId} [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}

	var req service.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalService.Create(userID, gameID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// GetGoals handles GET /goals/games/:gameId
// @Summary List a game's goal records
// @Tags goals
// @Produce json
// @Param gameId path string true "Game ID (UUID)"
// @Success 200 {array} models.Goal "Goal records"
// @Security BearerAuth
// @Router /goals/games/{gameId} [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "gameId")
	if !ok {
		return
	}

	goals, err := h.goalService.GetByGame(userID, gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// UpdateGoal handles PUT /goals/:goalId
// @Summary Update a goal record
// @Tags goals
// @Accept json
// @Produce json
// @Param goalId path string true "Goal ID (UUID)"
// @Param request body service.UpdateGoalRequest true "Fields to change"
// @Success 200 {object} models.Goal "Updated goal"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Security BearerAuth
// @Router /goals/{goalId} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	goalID, ok := parseUUIDParam(c, "goalId")
	if !ok {
		return
	}

	var req service.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalService.Update(userID, goalID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// DeleteGoal handles DELETE /goals/:goalId
// @Summary Delete a goal record
// @Tags goals
// @Produce json
// @Param goalId path string true "Goal ID (UUID)"
// @Success 200 {object} map[string]interface{} "Goal deleted"
// @Security BearerAuth
// @Router /goals/{goalId} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	goalID, ok := parseUUIDParam(c, "goalId")
	if !ok {
		return
	}

	if err := h.goalService.Delete(userID, goalID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}
