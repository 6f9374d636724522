package repository

import (
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FaceoffRepository handles database operations for faceoff counters
type FaceoffRepository struct {
	db *gorm.DB
}

// NewFaceoffRepository creates a new faceoff repository
func NewFaceoffRepository(db *gorm.DB) *FaceoffRepository {
	return &FaceoffRepository{db: db}
}

// Create creates a new faceoff row
func (r *FaceoffRepository) Create(faceoff *models.Faceoff) error {
	return r.db.Create(faceoff).Error
}

// GetByID retrieves a faceoff by ID
func (r *FaceoffRepository) GetByID(id uuid.UUID) (*models.Faceoff, error) {
	var faceoff models.Faceoff
	err := r.db.First(&faceoff, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &faceoff, nil
}

// GetByGame retrieves all faceoff rows of a game
func (r *FaceoffRepository) GetByGame(gameID uuid.UUID) ([]models.Faceoff, error) {
	var faceoffs []models.Faceoff
	err := r.db.Where("game_id = ?", gameID).Find(&faceoffs).Error
	return faceoffs, err
}

// GetByGameAndPlayer retrieves the faceoff row for a (game, player) pair
func (r *FaceoffRepository) GetByGameAndPlayer(gameID, playerID uuid.UUID) (*models.Faceoff, error) {
	var faceoff models.Faceoff
	err := r.db.First(&faceoff, "game_id = ? AND player_id = ?", gameID, playerID).Error
	if err != nil {
		return nil, err
	}
	return &faceoff, nil
}

// GetByTeam retrieves all faceoff rows across a team's games
func (r *FaceoffRepository) GetByTeam(teamID uuid.UUID) ([]models.Faceoff, error) {
	var faceoffs []models.Faceoff
	err := r.db.
		Joins("JOIN games ON games.id = faceoffs.game_id").
		Where("games.team_id = ?", teamID).
		Find(&faceoffs).Error
	return faceoffs, err
}

// Update updates a faceoff row
func (r *FaceoffRepository) Update(faceoff *models.Faceoff) error {
	return r.db.Save(faceoff).Error
}

// Delete removes a faceoff row
func (r *FaceoffRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Faceoff{}, "id = ?", id).Error
}
