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

// GoalService handles explicit goal records with scorer and assists
type GoalService struct {
	goalRepo   *repository.GoalRepository
	playerRepo *repository.PlayerRepository
	games      *GameService
	validator  *validator.Validate
}

// NewGoalService creates a new goal service
func NewGoalService(
	goalRepo *repository.GoalRepository,
	playerRepo *repository.PlayerRepository,
	games *GameService,
	validator *validator.Validate,
) *GoalService {
	return &GoalService{
		goalRepo:   goalRepo,
		playerRepo: playerRepo,
		games:      games,
		validator:  validator,
	}
}

// CreateGoalRequest represents the request to record a goal
type CreateGoalRequest struct {
	PeriodNumber    int        `json:"periodNumber" validate:"required,min=1,max=3"`
	ScorerPlayerID  uuid.UUID  `json:"scorerPlayerId" validate:"required"`
	Assist1PlayerID *uuid.UUID `json:"assist1PlayerId"`
	Assist2PlayerID *uuid.UUID `json:"assist2PlayerId"`
}

// UpdateGoalRequest represents the request to update a goal record
type UpdateGoalRequest struct {
	PeriodNumber    *int       `json:"periodNumber" validate:"omitempty,min=1,max=3"`
	ScorerPlayerID  *uuid.UUID `json:"scorerPlayerId"`
	Assist1PlayerID *uuid.UUID `json:"assist1PlayerId"`
	Assist2PlayerID *uuid.UUID `json:"assist2PlayerId"`
}

// Create records a goal. Scorer and assisters must all belong to the game's
// team.
func (s *GoalService) Create(userID, gameID uuid.UUID, req *CreateGoalRequest) (*models.Goal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	game, err := s.games.ResolveGame(userID, gameID)
	if err != nil {
		return nil, err
	}
	if err := s.checkPlayers(game.TeamID, &req.ScorerPlayerID, req.Assist1PlayerID, req.Assist2PlayerID); err != nil {
		return nil, err
	}

	goal := &models.Goal{
		GameID:          gameID,
		PeriodNumber:    req.PeriodNumber,
		ScorerPlayerID:  req.ScorerPlayerID,
		Assist1PlayerID: req.Assist1PlayerID,
		Assist2PlayerID: req.Assist2PlayerID,
		CreatedByID:     userID,
	}
	if err := s.goalRepo.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return goal, nil
}

// GetByGame lists the goal records of a game
func (s *GoalService) GetByGame(userID, gameID uuid.UUID) ([]models.Goal, error) {
	if _, err := s.games.ResolveGame(userID, gameID); err != nil {
		return nil, err
	}
	goals, err := s.goalRepo.GetByGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// Update changes a goal record
func (s *GoalService) Update(userID, goalID uuid.UUID, req *UpdateGoalRequest) (*models.Goal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	goal, game, err := s.resolveGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	if err := s.checkPlayers(game.TeamID, req.ScorerPlayerID, req.Assist1PlayerID, req.Assist2PlayerID); err != nil {
		return nil, err
	}

	if req.PeriodNumber != nil {
		goal.PeriodNumber = *req.PeriodNumber
	}
	if req.ScorerPlayerID != nil {
		goal.ScorerPlayerID = *req.ScorerPlayerID
	}
	if req.Assist1PlayerID != nil {
		goal.Assist1PlayerID = req.Assist1PlayerID
	}
	if req.Assist2PlayerID != nil {
		goal.Assist2PlayerID = req.Assist2PlayerID
	}

	if err := s.goalRepo.Update(goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

// Delete removes a goal record
func (s *GoalService) Delete(userID, goalID uuid.UUID) error {
	if _, _, err := s.resolveGoal(userID, goalID); err != nil {
		return err
	}
	if err := s.goalRepo.Delete(goalID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

// resolveGoal loads a goal and authorizes the user through the owning game
func (s *GoalService) resolveGoal(userID, goalID uuid.UUID) (*models.Goal, *models.Game, error) {
	goal, err := s.goalRepo.GetByID(goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrGoalNotFound
		}
		return nil, nil, fmt.Errorf("failed to get goal: %w", err)
	}
	game, err := s.games.ResolveGame(userID, goal.GameID)
	if err != nil {
		return nil, nil, err
	}
	return goal, game, nil
}

func (s *GoalService) checkPlayers(teamID uuid.UUID, ids ...*uuid.UUID) error {
	unique := make(map[uuid.UUID]struct{})
	for _, id := range ids {
		if id != nil {
			unique[*id] = struct{}{}
		}
	}
	if len(unique) == 0 {
		return nil
	}
	playerIDs := make([]uuid.UUID, 0, len(unique))
	for id := range unique {
		playerIDs = append(playerIDs, id)
	}
	count, err := s.playerRepo.CountByTeamAndIDs(teamID, playerIDs)
	if err != nil {
		return fmt.Errorf("failed to check players: %w", err)
	}
	if count != int64(len(playerIDs)) {
		return apperrors.ErrPlayerNotOnTeam
	}
	return nil
}
