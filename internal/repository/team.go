package repository

import (
	"strings"
	"time"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams. All read paths
// filter out soft-deleted teams so callers never see them.
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithAdmin creates a team and its creator's admin membership in a
// single transaction.
func (r *TeamRepository) CreateWithAdmin(team *models.Team, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		membership := &models.TeamMember{
			TeamID: team.ID,
			UserID: userID,
			Role:   models.TeamRoleAdmin,
		}
		return tx.Create(membership).Error
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ? AND deleted = false", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByCode retrieves a team by its join code. Lookup is case-insensitive:
// codes are stored upper-cased and input is upper-cased here.
func (r *TeamRepository) GetByCode(code string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "code = ? AND deleted = false", strings.ToUpper(code)).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetForUser retrieves all teams the user is a member of
func (r *TeamRepository) GetForUser(userID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ? AND teams.deleted = false", userID).
		Order("teams.created_at").
		Find(&teams).Error
	return teams, err
}

// CodeExists checks whether a join code is already taken, deleted teams
// included so codes are never reissued.
func (r *TeamRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("code = ?", strings.ToUpper(code)).Count(&count).Error
	return count > 0, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// SoftDelete marks a team deleted without removing the row
func (r *TeamRepository) SoftDelete(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.Team{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted":    true,
		"deleted_at": &now,
	}).Error
}
