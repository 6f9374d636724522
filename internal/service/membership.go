package service

import (
	"errors"
	"fmt"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"
	apperrors "github.com/CyberToe/HockeyAnalyst-sub000/internal/errors"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipService authorizes access to team-scoped resources. Every
// team-scoped operation goes through RequireMember or RequireAdmin before
// touching anything else.
type MembershipService struct {
	teamRepo   *repository.TeamRepository
	memberRepo *repository.TeamMemberRepository
}

// NewMembershipService creates a new membership service
func NewMembershipService(teamRepo *repository.TeamRepository, memberRepo *repository.TeamMemberRepository) *MembershipService {
	return &MembershipService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
	}
}

// RequireMember fails unless the user holds a membership on the team and
// returns it for downstream role checks.
func (s *MembershipService) RequireMember(userID, teamID uuid.UUID) (*models.TeamMember, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to resolve team: %w", err)
	}

	member, err := s.memberRepo.Get(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotTeamMember
		}
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	}

	return member, nil
}

// RequireAdmin fails unless the user holds an admin membership on the team
func (s *MembershipService) RequireAdmin(userID, teamID uuid.UUID) (*models.TeamMember, error) {
	member, err := s.RequireMember(userID, teamID)
	if err != nil {
		return nil, err
	}
	if !member.IsAdmin() {
		return nil, apperrors.ErrNotTeamAdmin
	}
	return member, nil
}
