package repository

import (
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameRepository handles database operations for games
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// CreateWithPeriods creates a game, its three periods and the initial game
// player attachments in a single transaction. A partial failure rolls back
// everything so a game can never exist without its periods.
func (r *GameRepository) CreateWithPeriods(game *models.Game, periods []models.Period, gamePlayers []models.GamePlayer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(game).Error; err != nil {
			return err
		}
		if len(periods) > 0 {
			for i := range periods {
				periods[i].GameID = game.ID
			}
			if err := tx.Create(&periods).Error; err != nil {
				return err
			}
		}
		if len(gamePlayers) > 0 {
			for i := range gamePlayers {
				gamePlayers[i].GameID = game.ID
			}
			if err := tx.Create(&gamePlayers).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a game by ID with its periods
func (r *GameRepository) GetByID(id uuid.UUID) (*models.Game, error) {
	var game models.Game
	err := r.db.Preload("Periods", func(db *gorm.DB) *gorm.DB {
		return db.Order("period_number")
	}).First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetByTeam retrieves all games of a team, newest first
func (r *GameRepository) GetByTeam(teamID uuid.UUID) ([]models.Game, error) {
	var games []models.Game
	err := r.db.Preload("Periods", func(db *gorm.DB) *gorm.DB {
		return db.Order("period_number")
	}).Where("team_id = ?", teamID).Order("created_at DESC").Find(&games).Error
	return games, err
}

// Update updates a game
func (r *GameRepository) Update(game *models.Game) error {
	return r.db.Save(game).Error
}

// Delete removes a game with its periods, attachments, goals and faceoffs.
// Shots are the caller's problem: deletion is blocked upstream while any
// shot references the game.
func (r *GameRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Period{}, "game_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.GamePlayer{}, "game_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Goal{}, "game_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Faceoff{}, "game_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Game{}, "id = ?", id).Error
	})
}
