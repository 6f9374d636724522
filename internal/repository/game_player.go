package repository

import (
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GamePlayerRepository handles database operations for game player attachments
type GamePlayerRepository struct {
	db *gorm.DB
}

// NewGamePlayerRepository creates a new game player repository
func NewGamePlayerRepository(db *gorm.DB) *GamePlayerRepository {
	return &GamePlayerRepository{db: db}
}

// GetByGame retrieves the attachments of a game with player details
func (r *GamePlayerRepository) GetByGame(gameID uuid.UUID) ([]models.GamePlayer, error) {
	var gamePlayers []models.GamePlayer
	err := r.db.Preload("Player").Where("game_id = ?", gameID).Find(&gamePlayers).Error
	return gamePlayers, err
}

// Get retrieves the attachment for a (game, player) pair
func (r *GamePlayerRepository) Get(gameID, playerID uuid.UUID) (*models.GamePlayer, error) {
	var gamePlayer models.GamePlayer
	err := r.db.First(&gamePlayer, "game_id = ? AND player_id = ?", gameID, playerID).Error
	if err != nil {
		return nil, err
	}
	return &gamePlayer, nil
}

// Update updates an attachment
func (r *GamePlayerRepository) Update(gamePlayer *models.GamePlayer) error {
	return r.db.Save(gamePlayer).Error
}
