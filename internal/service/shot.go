package service

import (
	"errors"
	"fmt"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"
	apperrors "github.com/CyberToe/HockeyAnalyst-sub000/internal/errors"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShotService handles shot recording for games
type ShotService struct {
	shotRepo   *repository.ShotRepository
	periodRepo *repository.PeriodRepository
	playerRepo *repository.PlayerRepository
	games      *GameService
	validator  *validator.Validate
}

// NewShotService creates a new shot service
func NewShotService(
	shotRepo *repository.ShotRepository,
	periodRepo *repository.PeriodRepository,
	playerRepo *repository.PlayerRepository,
	games *GameService,
	validator *validator.Validate,
) *ShotService {
	return &ShotService{
		shotRepo:   shotRepo,
		periodRepo: periodRepo,
		playerRepo: playerRepo,
		games:      games,
		validator:  validator,
	}
}

// CreateShotRequest represents the request to record a shot
type CreateShotRequest struct {
	PeriodID        uuid.UUID  `json:"periodId" validate:"required"`
	ShooterPlayerID *uuid.UUID `json:"shooterPlayerId"`
	X               float64    `json:"x"`
	Y               float64    `json:"y"`
	RinkWidth       *float64   `json:"rinkWidth" validate:"omitempty,gt=0"`
	RinkHeight      *float64   `json:"rinkHeight" validate:"omitempty,gt=0"`
	Scored          bool       `json:"scored"`
	ScoredAgainst   bool       `json:"scoredAgainst"`
}

// UpdateShotRequest represents the request to update a shot
type UpdateShotRequest struct {
	PeriodID        *uuid.UUID `json:"periodId"`
	ShooterPlayerID *uuid.UUID `json:"shooterPlayerId"`
	X               *float64   `json:"x"`
	Y               *float64   `json:"y"`
	Scored          *bool      `json:"scored"`
	ScoredAgainst   *bool      `json:"scoredAgainst"`
}

// Create records a shot for a game. The period must belong to the game and
// the shooter, when given, must belong to the game's team.
func (s *ShotService) Create(userID, gameID uuid.UUID, req *CreateShotRequest) (*models.Shot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	game, err := s.games.ResolveGame(userID, gameID)
	if err != nil {
		return nil, err
	}
	if err := s.checkPeriod(gameID, req.PeriodID); err != nil {
		return nil, err
	}
	if err := s.checkShooter(game.TeamID, req.ShooterPlayerID); err != nil {
		return nil, err
	}

	shot := &models.Shot{
		GameID:          gameID,
		PeriodID:        req.PeriodID,
		ShooterPlayerID: req.ShooterPlayerID,
		X:               req.X,
		Y:               req.Y,
		RinkWidth:       req.RinkWidth,
		RinkHeight:      req.RinkHeight,
		Scored:          req.Scored,
		ScoredAgainst:   req.ScoredAgainst,
		CreatedByID:     userID,
	}
	if err := s.shotRepo.Create(shot); err != nil {
		return nil, fmt.Errorf("failed to create shot: %w", err)
	}
	return shot, nil
}

// GetByGame lists the shots of a game in recording order
func (s *ShotService) GetByGame(userID, gameID uuid.UUID) ([]models.Shot, error) {
	if _, err := s.games.ResolveGame(userID, gameID); err != nil {
		return nil, err
	}
	shots, err := s.shotRepo.GetByGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shots: %w", err)
	}
	return shots, nil
}

// Update changes a recorded shot under the same consistency checks as Create
func (s *ShotService) Update(userID, shotID uuid.UUID, req *UpdateShotRequest) (*models.Shot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	shot, game, err := s.resolveShot(userID, shotID)
	if err != nil {
		return nil, err
	}

	if req.PeriodID != nil {
		if err := s.checkPeriod(shot.GameID, *req.PeriodID); err != nil {
			return nil, err
		}
		shot.PeriodID = *req.PeriodID
	}
	if req.ShooterPlayerID != nil {
		if err := s.checkShooter(game.TeamID, req.ShooterPlayerID); err != nil {
			return nil, err
		}
		shot.ShooterPlayerID = req.ShooterPlayerID
	}
	if req.X != nil {
		shot.X = *req.X
	}
	if req.Y != nil {
		shot.Y = *req.Y
	}
	if req.Scored != nil {
		shot.Scored = *req.Scored
	}
	if req.ScoredAgainst != nil {
		shot.ScoredAgainst = *req.ScoredAgainst
	}

	if err := s.shotRepo.Update(shot); err != nil {
		return nil, fmt.Errorf("failed to update shot: %w", err)
	}
	return shot, nil
}

// Delete removes a single shot
func (s *ShotService) Delete(userID, shotID uuid.UUID) error {
	if _, _, err := s.resolveShot(userID, shotID); err != nil {
		return err
	}
	if err := s.shotRepo.Delete(shotID); err != nil {
		return fmt.Errorf("failed to delete shot: %w", err)
	}
	return nil
}

// DeleteByGame removes all shots of a game, optionally scoped to one period,
// and returns how many were removed.
func (s *ShotService) DeleteByGame(userID, gameID uuid.UUID, periodID *uuid.UUID) (int64, error) {
	if _, err := s.games.ResolveGame(userID, gameID); err != nil {
		return 0, err
	}
	if periodID != nil {
		if err := s.checkPeriod(gameID, *periodID); err != nil {
			return 0, err
		}
	}
	deleted, err := s.shotRepo.DeleteByGame(gameID, periodID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete shots: %w", err)
	}
	return deleted, nil
}

// resolveShot loads a shot and authorizes the user through the owning game
func (s *ShotService) resolveShot(userID, shotID uuid.UUID) (*models.Shot, *models.Game, error) {
	shot, err := s.shotRepo.GetByID(shotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrShotNotFound
		}
		return nil, nil, fmt.Errorf("failed to get shot: %w", err)
	}
	game, err := s.games.ResolveGame(userID, shot.GameID)
	if err != nil {
		return nil, nil, err
	}
	return shot, game, nil
}

func (s *ShotService) checkPeriod(gameID, periodID uuid.UUID) error {
	period, err := s.periodRepo.GetByID(periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPeriodNotFound
		}
		return fmt.Errorf("failed to get period: %w", err)
	}
	if period.GameID != gameID {
		return apperrors.ErrPeriodNotInGame
	}
	return nil
}

func (s *ShotService) checkShooter(teamID uuid.UUID, playerID *uuid.UUID) error {
	if playerID == nil {
		return nil
	}
	count, err := s.playerRepo.CountByTeamAndIDs(teamID, []uuid.UUID{*playerID})
	if err != nil {
		return fmt.Errorf("failed to check shooter: %w", err)
	}
	if count != 1 {
		return apperrors.ErrPlayerNotOnTeam
	}
	return nil
}
