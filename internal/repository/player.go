package repository

import (
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// CreateWithGameAttachment creates a player and retroactively attaches it to
// every existing game of the team with included=false, in one transaction.
func (r *PlayerRepository) CreateWithGameAttachment(player *models.Player) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(player).Error; err != nil {
			return err
		}

		var games []models.Game
		if err := tx.Where("team_id = ?", player.TeamID).Find(&games).Error; err != nil {
			return err
		}
		if len(games) == 0 {
			return nil
		}

		attachments := make([]models.GamePlayer, 0, len(games))
		for _, game := range games {
			attachments = append(attachments, models.GamePlayer{
				GameID:   game.ID,
				PlayerID: player.ID,
				Included: false,
			})
		}
		return tx.Create(&attachments).Error
	})
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByTeam retrieves all players of a team
func (r *PlayerRepository) GetByTeam(teamID uuid.UUID) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("team_id = ?", teamID).Order("name").Find(&players).Error
	return players, err
}

// NameExists checks if a player name is already taken on a team
func (r *PlayerRepository) NameExists(teamID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Player{}).Where("team_id = ? AND name = ?", teamID, name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// JerseyNumberExists checks if a jersey number is already taken on a team
func (r *PlayerRepository) JerseyNumberExists(teamID uuid.UUID, number int, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Player{}).Where("team_id = ? AND jersey_number = ?", teamID, number)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// CountByTeamAndIDs counts how many of the given player ids belong to the
// team. Used to detect forged cross-team references in request bodies.
func (r *PlayerRepository) CountByTeamAndIDs(teamID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Player{}).
		Where("team_id = ? AND id IN ?", teamID, ids).
		Count(&count).Error
	return count, err
}

// Update updates a player
func (r *PlayerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

// Delete removes a player and its game attachments
func (r *PlayerRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.GamePlayer{}, "player_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Player{}, "id = ?", id).Error
	})
}
