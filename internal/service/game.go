package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"
	apperrors "github.com/CyberToe/HockeyAnalyst-sub000/internal/errors"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// periodsPerGame is fixed: every game gets exactly three periods
const periodsPerGame = 3

// GameService handles games, their periods and per-game lineups
type GameService struct {
	gameRepo       *repository.GameRepository
	periodRepo     *repository.PeriodRepository
	gamePlayerRepo *repository.GamePlayerRepository
	playerRepo     *repository.PlayerRepository
	shotRepo       *repository.ShotRepository
	membership     *MembershipService
	validator      *validator.Validate
}

// NewGameService creates a new game service
func NewGameService(
	gameRepo *repository.GameRepository,
	periodRepo *repository.PeriodRepository,
	gamePlayerRepo *repository.GamePlayerRepository,
	playerRepo *repository.PlayerRepository,
	shotRepo *repository.ShotRepository,
	membership *MembershipService,
	validator *validator.Validate,
) *GameService {
	return &GameService{
		gameRepo:       gameRepo,
		periodRepo:     periodRepo,
		gamePlayerRepo: gamePlayerRepo,
		playerRepo:     playerRepo,
		shotRepo:       shotRepo,
		membership:     membership,
		validator:      validator,
	}
}

// CreateGameRequest represents the request to create a game
type CreateGameRequest struct {
	Opponent  string     `json:"opponent" validate:"required,min=1,max=100"`
	Location  string     `json:"location" validate:"omitempty,max=200"`
	StartTime *time.Time `json:"startTime"`
	Notes     string     `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateGameRequest represents the request to update a game
type UpdateGameRequest struct {
	Opponent  *string    `json:"opponent" validate:"omitempty,min=1,max=100"`
	Location  *string    `json:"location" validate:"omitempty,max=200"`
	StartTime *time.Time `json:"startTime"`
	Notes     *string    `json:"notes" validate:"omitempty,max=2000"`
}

// UpdatePeriodRequest represents the request to update a single period
type UpdatePeriodRequest struct {
	AttackingDirection *models.AttackingDirection `json:"attackingDirection" validate:"omitempty,oneof=left right"`
	StartedAt          *time.Time                 `json:"startedAt"`
	EndedAt            *time.Time                 `json:"endedAt"`
}

// SetDirectionsRequest represents the request to set one period's attacking
// direction, with the other two recomputed.
type SetDirectionsRequest struct {
	PeriodNumber       int                       `json:"periodNumber" validate:"required,min=1,max=3"`
	AttackingDirection models.AttackingDirection `json:"attackingDirection" validate:"required,oneof=left right"`
}

// UpdateGamePlayerRequest represents the request to update a lineup entry
type UpdateGamePlayerRequest struct {
	Included       *bool `json:"included"`
	NumberOverride *int  `json:"numberOverride" validate:"omitempty,min=0,max=99"`
}

// DirectionsForEdit recomputes all three attacking directions after one
// period is set to dir. Periods one and three always attack the same end and
// period two the opposite one.
func DirectionsForEdit(periodNumber int, dir models.AttackingDirection) [periodsPerGame]models.AttackingDirection {
	if periodNumber == 2 {
		return [periodsPerGame]models.AttackingDirection{dir.Opposite(), dir, dir.Opposite()}
	}
	return [periodsPerGame]models.AttackingDirection{dir, dir.Opposite(), dir}
}

// Create creates a game with its three periods and the initial lineup. The
// default directions are right, left, right; regular team players start
// included and substitutes start excluded.
func (s *GameService) Create(userID, teamID uuid.UUID, req *CreateGameRequest) (*models.Game, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.membership.RequireMember(userID, teamID); err != nil {
		return nil, err
	}

	game := &models.Game{
		TeamID:      teamID,
		Opponent:    req.Opponent,
		Location:    req.Location,
		StartTime:   req.StartTime,
		Notes:       req.Notes,
		CreatedByID: userID,
	}

	periods := make([]models.Period, 0, periodsPerGame)
	dirs := DirectionsForEdit(1, models.AttackingDirectionRight)
	for i := 0; i < periodsPerGame; i++ {
		periods = append(periods, models.Period{
			PeriodNumber:       i + 1,
			AttackingDirection: dirs[i],
		})
	}

	players, err := s.playerRepo.GetByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	gamePlayers := make([]models.GamePlayer, 0, len(players))
	for _, player := range players {
		gamePlayers = append(gamePlayers, models.GamePlayer{
			PlayerID: player.ID,
			Included: player.Type == models.PlayerTypeTeamPlayer,
		})
	}

	if err := s.gameRepo.CreateWithPeriods(game, periods, gamePlayers); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	game.Periods = periods
	return game, nil
}

// GetByTeam lists the team's games, newest first
func (s *GameService) GetByTeam(userID, teamID uuid.UUID) ([]models.Game, error) {
	if _, err := s.membership.RequireMember(userID, teamID); err != nil {
		return nil, err
	}
	games, err := s.gameRepo.GetByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// Get retrieves a game with its periods
func (s *GameService) Get(userID, gameID uuid.UUID) (*models.Game, error) {
	return s.ResolveGame(userID, gameID)
}

// Update changes game attributes
func (s *GameService) Update(userID, gameID uuid.UUID, req *UpdateGameRequest) (*models.Game, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	game, err := s.ResolveGame(userID, gameID)
	if err != nil {
		return nil, err
	}

	if req.Opponent != nil {
		game.Opponent = *req.Opponent
	}
	if req.Location != nil {
		game.Location = *req.Location
	}
	if req.StartTime != nil {
		game.StartTime = req.StartTime
	}
	if req.Notes != nil {
		game.Notes = *req.Notes
	}
	if err := s.gameRepo.Update(game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return game, nil
}

// Delete removes a game. Games with recorded shots are kept until the shots
// are deleted first.
func (s *GameService) Delete(userID, gameID uuid.UUID) error {
	if _, err := s.ResolveGame(userID, gameID); err != nil {
		return err
	}

	shots, err := s.shotRepo.CountByGame(gameID)
	if err != nil {
		return fmt.Errorf("failed to count shots: %w", err)
	}
	if shots > 0 {
		return apperrors.ErrGameHasShots
	}

	if err := s.gameRepo.Delete(gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

// GetPeriods lists the game's periods in order
func (s *GameService) GetPeriods(userID, gameID uuid.UUID) ([]models.Period, error) {
	if _, err := s.ResolveGame(userID, gameID); err != nil {
		return nil, err
	}
	periods, err := s.periodRepo.GetByGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	return periods, nil
}

// UpdatePeriod edits one period. Changing its attacking direction recomputes
// the directions of all three periods atomically so they always alternate.
func (s *GameService) UpdatePeriod(userID, gameID, periodID uuid.UUID, req *UpdatePeriodRequest) ([]models.Period, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.ResolveGame(userID, gameID); err != nil {
		return nil, err
	}

	period, err := s.periodRepo.GetByID(periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPeriodNotFound
		}
		return nil, fmt.Errorf("failed to get period: %w", err)
	}
	if period.GameID != gameID {
		return nil, apperrors.ErrPeriodNotInGame
	}

	if req.StartedAt != nil {
		period.StartedAt = req.StartedAt
	}
	if req.EndedAt != nil {
		period.EndedAt = req.EndedAt
	}

	if req.AttackingDirection != nil {
		return s.applyDirections(gameID, period, *req.AttackingDirection)
	}

	if err := s.periodRepo.Update(period); err != nil {
		return nil, fmt.Errorf("failed to update period: %w", err)
	}
	return s.periodRepo.GetByGame(gameID)
}

// SetDirections sets the attacking direction of the period identified by its
// number and recomputes the other two.
func (s *GameService) SetDirections(userID, gameID uuid.UUID, req *SetDirectionsRequest) ([]models.Period, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.ResolveGame(userID, gameID); err != nil {
		return nil, err
	}

	periods, err := s.periodRepo.GetByGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	var edited *models.Period
	for i := range periods {
		if periods[i].PeriodNumber == req.PeriodNumber {
			edited = &periods[i]
			break
		}
	}
	if edited == nil {
		return nil, apperrors.ErrPeriodNotFound
	}
	return s.applyDirections(gameID, edited, req.AttackingDirection)
}

func (s *GameService) applyDirections(gameID uuid.UUID, edited *models.Period, dir models.AttackingDirection) ([]models.Period, error) {
	dirs := DirectionsForEdit(edited.PeriodNumber, dir)

	periods, err := s.periodRepo.GetByGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	for i := range periods {
		periods[i].AttackingDirection = dirs[periods[i].PeriodNumber-1]
		if periods[i].ID == edited.ID {
			periods[i].StartedAt = edited.StartedAt
			periods[i].EndedAt = edited.EndedAt
		}
	}
	if err := s.periodRepo.UpdateAll(periods); err != nil {
		return nil, fmt.Errorf("failed to update periods: %w", err)
	}
	return periods, nil
}

// GetGamePlayers lists the game's lineup with player details
func (s *GameService) GetGamePlayers(userID, gameID uuid.UUID) ([]models.GamePlayer, error) {
	if _, err := s.ResolveGame(userID, gameID); err != nil {
		return nil, err
	}
	gamePlayers, err := s.gamePlayerRepo.GetByGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list game players: %w", err)
	}
	return gamePlayers, nil
}

// UpdateGamePlayer toggles a lineup entry or overrides its jersey number for
// this game only.
func (s *GameService) UpdateGamePlayer(userID, gameID, playerID uuid.UUID, req *UpdateGamePlayerRequest) (*models.GamePlayer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.ResolveGame(userID, gameID); err != nil {
		return nil, err
	}

	gamePlayer, err := s.gamePlayerRepo.Get(gameID, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGamePlayerNotFound
		}
		return nil, fmt.Errorf("failed to get game player: %w", err)
	}

	if req.Included != nil {
		gamePlayer.Included = *req.Included
	}
	if req.NumberOverride != nil {
		gamePlayer.NumberOverride = req.NumberOverride
	}
	if err := s.gamePlayerRepo.Update(gamePlayer); err != nil {
		return nil, fmt.Errorf("failed to update game player: %w", err)
	}
	return gamePlayer, nil
}

// ResolveGame loads a game and authorizes the user against the owning team.
// Services for shots, goals, faceoffs and analytics route their team checks
// through here.
func (s *GameService) ResolveGame(userID, gameID uuid.UUID) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	if _, err := s.membership.RequireMember(userID, game.TeamID); err != nil {
		return nil, err
	}
	return game, nil
}
