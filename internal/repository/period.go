package repository

import (
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PeriodRepository handles database operations for periods
type PeriodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository creates a new period repository
func NewPeriodRepository(db *gorm.DB) *PeriodRepository {
	return &PeriodRepository{db: db}
}

// GetByID retrieves a period by ID
func (r *PeriodRepository) GetByID(id uuid.UUID) (*models.Period, error) {
	var period models.Period
	err := r.db.First(&period, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetByGame retrieves the periods of a game ordered by period number
func (r *PeriodRepository) GetByGame(gameID uuid.UUID) ([]models.Period, error) {
	var periods []models.Period
	err := r.db.Where("game_id = ?", gameID).Order("period_number").Find(&periods).Error
	return periods, err
}

// Update updates a period
func (r *PeriodRepository) Update(period *models.Period) error {
	return r.db.Save(period).Error
}

// UpdateAll saves every given period in a single transaction, so a
// direction recomputation is applied atomically or not at all.
func (r *PeriodRepository) UpdateAll(periods []models.Period) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range periods {
			if err := tx.Save(&periods[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
