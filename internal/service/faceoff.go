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

// FaceoffService handles per-game faceoff counters. The won <= taken
// invariant is checked before every write.
type FaceoffService struct {
	faceoffRepo *repository.FaceoffRepository
	playerRepo  *repository.PlayerRepository
	games       *GameService
	validator   *validator.Validate
}

// NewFaceoffService creates a new faceoff service
func NewFaceoffService(
	faceoffRepo *repository.FaceoffRepository,
	playerRepo *repository.PlayerRepository,
	games *GameService,
	validator *validator.Validate,
) *FaceoffService {
	return &FaceoffService{
		faceoffRepo: faceoffRepo,
		playerRepo:  playerRepo,
		games:       games,
		validator:   validator,
	}
}

// CreateFaceoffRequest represents the request to create a player's counters
type CreateFaceoffRequest struct {
	PlayerID uuid.UUID `json:"playerId" validate:"required"`
	Taken    int       `json:"taken" validate:"min=0"`
	Won      int       `json:"won" validate:"min=0"`
}

// UpdateFaceoffRequest represents the request to overwrite the counters
type UpdateFaceoffRequest struct {
	Taken int `json:"taken" validate:"min=0"`
	Won   int `json:"won" validate:"min=0"`
}

// IncrementFaceoffRequest represents a single faceoff outcome
type IncrementFaceoffRequest struct {
	Won bool `json:"won"`
}

// Create creates the faceoff row for a player in a game. Each player has at
// most one row per game.
func (s *FaceoffService) Create(userID, gameID uuid.UUID, req *CreateFaceoffRequest) (*models.Faceoff, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Won > req.Taken {
		return nil, apperrors.ErrWonExceedsTaken
	}
	game, err := s.games.ResolveGame(userID, gameID)
	if err != nil {
		return nil, err
	}
	if err := s.checkPlayer(game.TeamID, req.PlayerID); err != nil {
		return nil, err
	}

	if _, err := s.faceoffRepo.GetByGameAndPlayer(gameID, req.PlayerID); err == nil {
		return nil, apperrors.ErrFaceoffExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check faceoff: %w", err)
	}

	faceoff := &models.Faceoff{
		GameID:      gameID,
		PlayerID:    req.PlayerID,
		Taken:       req.Taken,
		Won:         req.Won,
		CreatedByID: userID,
	}
	if err := s.faceoffRepo.Create(faceoff); err != nil {
		return nil, fmt.Errorf("failed to create faceoff: %w", err)
	}
	return faceoff, nil
}

// GetByGame lists the faceoff rows of a game
func (s *FaceoffService) GetByGame(userID, gameID uuid.UUID) ([]models.Faceoff, error) {
	if _, err := s.games.ResolveGame(userID, gameID); err != nil {
		return nil, err
	}
	faceoffs, err := s.faceoffRepo.GetByGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list faceoffs: %w", err)
	}
	return faceoffs, nil
}

// Increment registers one faceoff outcome: taken always goes up by one, won
// only on a win.
func (s *FaceoffService) Increment(userID, faceoffID uuid.UUID, req *IncrementFaceoffRequest) (*models.Faceoff, error) {
	faceoff, err := s.resolveFaceoff(userID, faceoffID)
	if err != nil {
		return nil, err
	}

	faceoff.Taken++
	if req.Won {
		faceoff.Won++
	}
	if err := s.faceoffRepo.Update(faceoff); err != nil {
		return nil, fmt.Errorf("failed to update faceoff: %w", err)
	}
	return faceoff, nil
}

// Update overwrites a player's counters, rejecting won greater than taken
func (s *FaceoffService) Update(userID, faceoffID uuid.UUID, req *UpdateFaceoffRequest) (*models.Faceoff, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Won > req.Taken {
		return nil, apperrors.ErrWonExceedsTaken
	}

	faceoff, err := s.resolveFaceoff(userID, faceoffID)
	if err != nil {
		return nil, err
	}

	faceoff.Taken = req.Taken
	faceoff.Won = req.Won
	if err := s.faceoffRepo.Update(faceoff); err != nil {
		return nil, fmt.Errorf("failed to update faceoff: %w", err)
	}
	return faceoff, nil
}

// Delete removes a faceoff row
func (s *FaceoffService) Delete(userID, faceoffID uuid.UUID) error {
	if _, err := s.resolveFaceoff(userID, faceoffID); err != nil {
		return err
	}
	if err := s.faceoffRepo.Delete(faceoffID); err != nil {
		return fmt.Errorf("failed to delete faceoff: %w", err)
	}
	return nil
}

// resolveFaceoff loads a faceoff row and authorizes the user through the
// owning game
func (s *FaceoffService) resolveFaceoff(userID, faceoffID uuid.UUID) (*models.Faceoff, error) {
	faceoff, err := s.faceoffRepo.GetByID(faceoffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFaceoffNotFound
		}
		return nil, fmt.Errorf("failed to get faceoff: %w", err)
	}
	if _, err := s.games.ResolveGame(userID, faceoff.GameID); err != nil {
		return nil, err
	}
	return faceoff, nil
}

func (s *FaceoffService) checkPlayer(teamID, playerID uuid.UUID) error {
	count, err := s.playerRepo.CountByTeamAndIDs(teamID, []uuid.UUID{playerID})
	if err != nil {
		return fmt.Errorf("failed to check player: %w", err)
	}
	if count != 1 {
		return apperrors.ErrPlayerNotOnTeam
	}
	return nil
}
