package repository

import (
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoalRepository handles database operations for goal records
type GoalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create creates a new goal record
func (r *GoalRepository) Create(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

// GetByID retrieves a goal by ID
func (r *GoalRepository) GetByID(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.First(&goal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetByGame retrieves all goal records of a game
func (r *GoalRepository) GetByGame(gameID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Where("game_id = ?", gameID).Order("created_at").Find(&goals).Error
	return goals, err
}

// GetByTeam retrieves all goal records across a team's games
func (r *GoalRepository) GetByTeam(teamID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.
		Joins("JOIN games ON games.id = goals.game_id").
		Where("games.team_id = ?", teamID).
		Find(&goals).Error
	return goals, err
}

// Update updates a goal record
func (r *GoalRepository) Update(goal *models.Goal) error {
	return r.db.Save(goal).Error
}

// Delete removes a goal record
func (r *GoalRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Goal{}, "id = ?", id).Error
}
