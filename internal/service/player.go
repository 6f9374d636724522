package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"
	apperrors "github.com/CyberToe/HockeyAnalyst-sub000/internal/errors"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerService handles roster management for a team
type PlayerService struct {
	playerRepo *repository.PlayerRepository
	shotRepo   *repository.ShotRepository
	membership *MembershipService
	validator  *validator.Validate
}

// NewPlayerService creates a new player service
func NewPlayerService(playerRepo *repository.PlayerRepository, shotRepo *repository.ShotRepository, membership *MembershipService, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		shotRepo:   shotRepo,
		membership: membership,
		validator:  validator,
	}
}

// CreatePlayerRequest represents the request to add a player to the roster
type CreatePlayerRequest struct {
	Name         string            `json:"name" validate:"required,min=1,max=100"`
	JerseyNumber *int              `json:"jerseyNumber" validate:"omitempty,min=0,max=99"`
	Type         models.PlayerType `json:"type" validate:"omitempty,oneof=TEAM_PLAYER SUBSTITUTE"`
}

// UpdatePlayerRequest represents the request to update a player
type UpdatePlayerRequest struct {
	Name         *string            `json:"name" validate:"omitempty,min=1,max=100"`
	JerseyNumber *int               `json:"jerseyNumber" validate:"omitempty,min=0,max=99"`
	Type         *models.PlayerType `json:"type" validate:"omitempty,oneof=TEAM_PLAYER SUBSTITUTE"`
}

// Create adds a player to the team roster. New players are attached to every
// existing game of the team as not included, so past lineups stay accurate.
func (s *PlayerService) Create(userID, teamID uuid.UUID, req *CreatePlayerRequest) (*models.Player, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.membership.RequireMember(userID, teamID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if err := s.checkRosterConflicts(teamID, name, req.JerseyNumber, nil); err != nil {
		return nil, err
	}

	playerType := req.Type
	if playerType == "" {
		playerType = models.PlayerTypeTeamPlayer
	}

	player := &models.Player{
		TeamID:       teamID,
		Name:         name,
		JerseyNumber: req.JerseyNumber,
		Type:         playerType,
	}
	if err := s.playerRepo.CreateWithGameAttachment(player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

// GetByTeam lists the team roster
func (s *PlayerService) GetByTeam(userID, teamID uuid.UUID) ([]models.Player, error) {
	if _, err := s.membership.RequireMember(userID, teamID); err != nil {
		return nil, err
	}
	players, err := s.playerRepo.GetByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// Update changes player attributes
func (s *PlayerService) Update(userID, playerID uuid.UUID, req *UpdatePlayerRequest) (*models.Player, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	player, err := s.resolvePlayer(userID, playerID)
	if err != nil {
		return nil, err
	}

	name := player.Name
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	number := player.JerseyNumber
	if req.JerseyNumber != nil {
		number = req.JerseyNumber
	}
	if err := s.checkRosterConflicts(player.TeamID, name, number, &playerID); err != nil {
		return nil, err
	}

	player.Name = name
	player.JerseyNumber = number
	if req.Type != nil {
		player.Type = *req.Type
	}
	if err := s.playerRepo.Update(player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return player, nil
}

// Delete removes a player from the roster. Players with recorded shots are
// kept so shot history stays attributable.
func (s *PlayerService) Delete(userID, playerID uuid.UUID) error {
	if _, err := s.resolvePlayer(userID, playerID); err != nil {
		return err
	}

	shots, err := s.shotRepo.CountByPlayer(playerID)
	if err != nil {
		return fmt.Errorf("failed to count shots: %w", err)
	}
	if shots > 0 {
		return apperrors.ErrPlayerHasShots
	}

	if err := s.playerRepo.Delete(playerID); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

// resolvePlayer loads a player and authorizes the user against its team
func (s *PlayerService) resolvePlayer(userID, playerID uuid.UUID) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if _, err := s.membership.RequireMember(userID, player.TeamID); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *PlayerService) checkRosterConflicts(teamID uuid.UUID, name string, number *int, excludeID *uuid.UUID) error {
	taken, err := s.playerRepo.NameExists(teamID, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check player name: %w", err)
	}
	if taken {
		return apperrors.ErrPlayerNameExists
	}
	if number != nil {
		taken, err = s.playerRepo.JerseyNumberExists(teamID, *number, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check jersey number: %w", err)
		}
		if taken {
			return apperrors.ErrJerseyNumberExists
		}
	}
	return nil
}
