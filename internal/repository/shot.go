package repository

import (
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShotRepository handles database operations for shots
type ShotRepository struct {
	db *gorm.DB
}

// NewShotRepository creates a new shot repository
func NewShotRepository(db *gorm.DB) *ShotRepository {
	return &ShotRepository{db: db}
}

// Create creates a new shot
func (r *ShotRepository) Create(shot *models.Shot) error {
	return r.db.Create(shot).Error
}

// GetByID retrieves a shot by ID
func (r *ShotRepository) GetByID(id uuid.UUID) (*models.Shot, error) {
	var shot models.Shot
	err := r.db.First(&shot, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shot, nil
}

// GetByGame retrieves all shots of a game
func (r *ShotRepository) GetByGame(gameID uuid.UUID) ([]models.Shot, error) {
	var shots []models.Shot
	err := r.db.Where("game_id = ?", gameID).Order("created_at").Find(&shots).Error
	return shots, err
}

// GetByTeam retrieves all shots across a team's games
func (r *ShotRepository) GetByTeam(teamID uuid.UUID) ([]models.Shot, error) {
	var shots []models.Shot
	err := r.db.
		Joins("JOIN games ON games.id = shots.game_id").
		Where("games.team_id = ?", teamID).
		Find(&shots).Error
	return shots, err
}

// CountByGame returns the number of shots recorded for a game
func (r *ShotRepository) CountByGame(gameID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Shot{}).Where("game_id = ?", gameID).Count(&count).Error
	return count, err
}

// CountByPlayer returns the number of shots attributed to a player
func (r *ShotRepository) CountByPlayer(playerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Shot{}).Where("shooter_player_id = ?", playerID).Count(&count).Error
	return count, err
}

// Update updates a shot
func (r *ShotRepository) Update(shot *models.Shot) error {
	return r.db.Save(shot).Error
}

// Delete removes a shot
func (r *ShotRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shot{}, "id = ?", id).Error
}

// DeleteByGame removes all shots of a game, optionally scoped to one period
func (r *ShotRepository) DeleteByGame(gameID uuid.UUID, periodID *uuid.UUID) (int64, error) {
	query := r.db.Where("game_id = ?", gameID)
	if periodID != nil {
		query = query.Where("period_id = ?", *periodID)
	}
	result := query.Delete(&models.Shot{})
	return result.RowsAffected, result.Error
}
