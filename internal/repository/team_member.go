package repository

import (
	apperrors "github.com/CyberToe/HockeyAnalyst-sub000/internal/errors"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team memberships.
// The "team keeps at least one admin" invariant is enforced here, inside the
// transactional mutation paths, so route handlers cannot bypass it.
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create creates a new membership
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// Get retrieves the membership for a (team, user) pair
func (r *TeamMemberRepository) Get(teamID, userID uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByTeam retrieves all memberships of a team with user details
func (r *TeamMemberRepository) GetByTeam(teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Preload("User").Where("team_id = ?", teamID).Order("created_at").Find(&members).Error
	return members, err
}

// CountMembers returns the number of members in a team
func (r *TeamMemberRepository) CountMembers(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// UpdateRoleGuarded changes a member's role inside a transaction that
// rejects demoting the last admin.
func (r *TeamMemberRepository) UpdateRoleGuarded(teamID, userID uuid.UUID, role models.TeamRole) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var member models.TeamMember
		if err := tx.First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error; err != nil {
			return err
		}
		if member.Role == models.TeamRoleAdmin && role != models.TeamRoleAdmin {
			admins, err := countAdmins(tx, teamID)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return apperrors.ErrLastAdmin
			}
		}
		return tx.Model(&models.TeamMember{}).
			Where("team_id = ? AND user_id = ?", teamID, userID).
			Update("role", role).Error
	})
}

// DeleteGuarded removes a membership inside a transaction that rejects
// removing the last admin. The only way out for a sole admin is deleting the
// team itself, which keeps the admin floor intact for live teams.
func (r *TeamMemberRepository) DeleteGuarded(teamID, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var member models.TeamMember
		if err := tx.First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error; err != nil {
			return err
		}
		if member.Role == models.TeamRoleAdmin {
			admins, err := countAdmins(tx, teamID)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return apperrors.ErrLastAdmin
			}
		}
		return tx.Delete(&models.TeamMember{}, "team_id = ? AND user_id = ?", teamID, userID).Error
	})
}

func countAdmins(tx *gorm.DB, teamID uuid.UUID) (int64, error) {
	var count int64
	err := tx.Model(&models.TeamMember{}).
		Where("team_id = ? AND role = ?", teamID, models.TeamRoleAdmin).
		Count(&count).Error
	return count, err
}
