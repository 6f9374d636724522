package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"
	apperrors "github.com/CyberToe/HockeyAnalyst-sub000/internal/errors"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/logger"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles team lifecycle and roster membership
type TeamService struct {
	teamRepo   *repository.TeamRepository
	memberRepo *repository.TeamMemberRepository
	membership *MembershipService
	validator  *validator.Validate
	log        *logger.Logger
}

// NewTeamService creates a new team service
func NewTeamService(teamRepo *repository.TeamRepository, memberRepo *repository.TeamMemberRepository, membership *MembershipService, validator *validator.Validate, log *logger.Logger) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		membership: membership,
		validator:  validator,
		log:        log,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url,max=500"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,max=500"`
}

// DeleteTeamResult reports which path the delete request took
type DeleteTeamResult struct {
	Deleted bool   `json:"deleted"`
	Left    bool   `json:"left"`
	Message string `json:"message"`
}

// Create creates a team with a fresh join code and makes the creator its
// first admin.
func (s *TeamService) Create(userID uuid.UUID, req *CreateTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	code, err := GenerateTeamCode(s.teamRepo.CodeExists)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:        req.Name,
		Code:        code,
		ImageURL:    req.ImageURL,
		CreatedByID: userID,
	}
	if err := s.teamRepo.CreateWithAdmin(team, userID); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"team_id": team.ID,
		"user_id": userID,
	}).Info("Team created")

	return team, nil
}

// GetForUser lists the teams the user belongs to
func (s *TeamService) GetForUser(userID uuid.UUID) ([]models.Team, error) {
	teams, err := s.teamRepo.GetForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// Get retrieves a team the user is a member of
func (s *TeamService) Get(userID, teamID uuid.UUID) (*models.Team, error) {
	if _, err := s.membership.RequireMember(userID, teamID); err != nil {
		return nil, err
	}
	return s.teamRepo.GetByID(teamID)
}

// Update changes team attributes, admin only
func (s *TeamService) Update(userID, teamID uuid.UUID, req *UpdateTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.membership.RequireAdmin(userID, teamID); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.ImageURL != nil {
		team.ImageURL = *req.ImageURL
	}
	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return team, nil
}

// Join adds the user to the team matching the join code. Codes are matched
// case-insensitively.
func (s *TeamService) Join(userID uuid.UUID, code string) (*models.Team, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != TeamCodeLength {
		return nil, apperrors.ErrInvalidTeamCode
	}

	team, err := s.teamRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidTeamCode
		}
		return nil, fmt.Errorf("failed to look up team code: %w", err)
	}

	if _, err := s.memberRepo.Get(team.ID, userID); err == nil {
		return nil, apperrors.ErrMembershipExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	member := &models.TeamMember{
		TeamID: team.ID,
		UserID: userID,
		Role:   models.TeamRoleMember,
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to join team: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"team_id": team.ID,
		"user_id": userID,
	}).Info("User joined team")

	return team, nil
}

// Leave removes the user's own membership. A sole admin cannot leave; the
// admin floor guard in the repository surfaces that as ErrLastAdmin.
func (s *TeamService) Leave(userID, teamID uuid.UUID) error {
	if _, err := s.membership.RequireMember(userID, teamID); err != nil {
		return err
	}
	if err := s.memberRepo.DeleteGuarded(teamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return err
	}
	return nil
}

// Delete handles the team delete endpoint. Admins get a two-step protocol:
// without the confirm flag the call fails with a confirmation prompt, with it
// the team is soft-deleted. For non-admin members the same endpoint degrades
// to leaving the team.
func (s *TeamService) Delete(userID, teamID uuid.UUID, confirmed bool) (*DeleteTeamResult, error) {
	member, err := s.membership.RequireMember(userID, teamID)
	if err != nil {
		return nil, err
	}

	if !member.IsAdmin() {
		if err := s.Leave(userID, teamID); err != nil {
			return nil, err
		}
		return &DeleteTeamResult{Left: true, Message: "You have left the team"}, nil
	}

	if !confirmed {
		count, err := s.memberRepo.CountMembers(teamID)
		if err != nil {
			return nil, fmt.Errorf("failed to count members: %w", err)
		}
		if count <= 1 {
			return nil, apperrors.NewConfirmationRequiredError("you are the only member; deleting the team cannot be undone; repeat the request with confirm=true")
		}
		return nil, apperrors.NewConfirmationRequiredError("deleting the team removes it for all members; repeat the request with confirm=true")
	}

	if err := s.teamRepo.SoftDelete(teamID); err != nil {
		return nil, fmt.Errorf("failed to delete team: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"team_id": teamID,
		"user_id": userID,
	}).Info("Team deleted")

	return &DeleteTeamResult{Deleted: true, Message: "Team deleted"}, nil
}

// ListMembers lists the team's memberships with user details
func (s *TeamService) ListMembers(userID, teamID uuid.UUID) ([]models.TeamMember, error) {
	if _, err := s.membership.RequireMember(userID, teamID); err != nil {
		return nil, err
	}
	members, err := s.memberRepo.GetByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// UpdateMemberRole changes another member's role, admin only. Demoting the
// last admin is rejected.
func (s *TeamService) UpdateMemberRole(userID, teamID, memberUserID uuid.UUID, role models.TeamRole) (*models.TeamMember, error) {
	if role != models.TeamRoleAdmin && role != models.TeamRoleMember {
		return nil, apperrors.NewValidationError("role", "must be admin or member")
	}
	if _, err := s.membership.RequireAdmin(userID, teamID); err != nil {
		return nil, err
	}

	if err := s.memberRepo.UpdateRoleGuarded(teamID, memberUserID, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, err
	}
	return s.memberRepo.Get(teamID, memberUserID)
}

// RemoveMember removes another member from the team, admin only. Admins
// remove themselves through Leave, not here.
func (s *TeamService) RemoveMember(userID, teamID, memberUserID uuid.UUID) error {
	if _, err := s.membership.RequireAdmin(userID, teamID); err != nil {
		return err
	}
	if userID == memberUserID {
		return apperrors.ErrSelfRemoval
	}
	if err := s.memberRepo.DeleteGuarded(teamID, memberUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return err
	}
	return nil
}
