package service

import (
	"fmt"
	"math"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/logger"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/repository"

	"github.com/google/uuid"
)

// AnalyticsService computes read-only aggregates over shots, goals and
// faceoffs. Each table is fetched once per request and filtered in memory.
type AnalyticsService struct {
	gameRepo    *repository.GameRepository
	playerRepo  *repository.PlayerRepository
	shotRepo    *repository.ShotRepository
	goalRepo    *repository.GoalRepository
	faceoffRepo *repository.FaceoffRepository
	periodRepo  *repository.PeriodRepository
	games       *GameService
	membership  *MembershipService
	log         *logger.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	gameRepo *repository.GameRepository,
	playerRepo *repository.PlayerRepository,
	shotRepo *repository.ShotRepository,
	goalRepo *repository.GoalRepository,
	faceoffRepo *repository.FaceoffRepository,
	periodRepo *repository.PeriodRepository,
	games *GameService,
	membership *MembershipService,
	log *logger.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		gameRepo:    gameRepo,
		playerRepo:  playerRepo,
		shotRepo:    shotRepo,
		goalRepo:    goalRepo,
		faceoffRepo: faceoffRepo,
		periodRepo:  periodRepo,
		games:       games,
		membership:  membership,
		log:         log,
	}
}

// TeamAnalytics summarizes a team's games
type TeamAnalytics struct {
	TeamID             uuid.UUID `json:"teamId"`
	Games              int       `json:"games"`
	ShotsFor           int       `json:"shotsFor"`
	ShotsAgainst       int       `json:"shotsAgainst"`
	GoalsFor           int       `json:"goalsFor"`
	GoalsAgainst       int       `json:"goalsAgainst"`
	ShootingPercentage float64   `json:"shootingPercentage"`
}

// PlayerAnalytics summarizes one player across all games
type PlayerAnalytics struct {
	PlayerID           uuid.UUID `json:"playerId"`
	Name               string    `json:"name"`
	JerseyNumber       *int      `json:"jerseyNumber,omitempty"`
	Shots              int       `json:"shots"`
	Goals              int       `json:"goals"`
	Assists            int       `json:"assists"`
	ShootingPercentage float64   `json:"shootingPercentage"`
	FaceoffsTaken      int       `json:"faceoffsTaken"`
	FaceoffsWon        int       `json:"faceoffsWon"`
	FaceoffPercentage  float64   `json:"faceoffPercentage"`
}

// PeriodStats is the per-period slice of GameAnalytics
type PeriodStats struct {
	PeriodNumber int `json:"periodNumber"`
	ShotsFor     int `json:"shotsFor"`
	ShotsAgainst int `json:"shotsAgainst"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`
}

// GameAnalytics summarizes one game with a per-period breakdown
type GameAnalytics struct {
	GameID             uuid.UUID     `json:"gameId"`
	ShotsFor           int           `json:"shotsFor"`
	ShotsAgainst       int           `json:"shotsAgainst"`
	GoalsFor           int           `json:"goalsFor"`
	GoalsAgainst       int           `json:"goalsAgainst"`
	ShootingPercentage float64       `json:"shootingPercentage"`
	Periods            []PeriodStats `json:"periods"`
}

// ShootingPercentage returns goals/shots as a percentage rounded to two
// decimals, and zero when no shots were taken.
func ShootingPercentage(goals, shots int) float64 {
	if shots == 0 {
		return 0
	}
	return math.Round(float64(goals)/float64(shots)*10000) / 100
}

// GetTeamAnalytics aggregates shots, goals and games across the whole team
func (s *AnalyticsService) GetTeamAnalytics(userID, teamID uuid.UUID) (*TeamAnalytics, error) {
	if _, err := s.membership.RequireMember(userID, teamID); err != nil {
		return nil, err
	}

	games, err := s.gameRepo.GetByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	shots, err := s.shotRepo.GetByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shots: %w", err)
	}
	goals, err := s.goalRepo.GetByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	result := &TeamAnalytics{TeamID: teamID, Games: len(games)}

	scoredByGame := make(map[uuid.UUID]int)
	goalRecordsByGame := make(map[uuid.UUID]int)
	for _, shot := range shots {
		if shot.ScoredAgainst {
			result.ShotsAgainst++
			if shot.Scored {
				result.GoalsAgainst++
			}
			continue
		}
		result.ShotsFor++
		if shot.Scored {
			scoredByGame[shot.GameID]++
		}
	}
	for _, goal := range goals {
		goalRecordsByGame[goal.GameID]++
	}
	for _, game := range games {
		result.GoalsFor += s.reconcileGoals(game.ID, scoredByGame[game.ID], goalRecordsByGame[game.ID])
	}

	result.ShootingPercentage = ShootingPercentage(result.GoalsFor, result.ShotsFor)
	return result, nil
}

// GetTeamPlayerAnalytics aggregates per-player shooting and faceoff numbers
func (s *AnalyticsService) GetTeamPlayerAnalytics(userID, teamID uuid.UUID) ([]PlayerAnalytics, error) {
	if _, err := s.membership.RequireMember(userID, teamID); err != nil {
		return nil, err
	}

	players, err := s.playerRepo.GetByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	shots, err := s.shotRepo.GetByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shots: %w", err)
	}
	goals, err := s.goalRepo.GetByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	faceoffs, err := s.faceoffRepo.GetByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list faceoffs: %w", err)
	}

	type playerTally struct {
		shots       int
		scoredShots int
		goalRecords int
		assists     int
		taken       int
		won         int
	}
	tallies := make(map[uuid.UUID]*playerTally, len(players))
	for _, player := range players {
		tallies[player.ID] = &playerTally{}
	}

	for _, shot := range shots {
		if shot.ShooterPlayerID == nil || shot.ScoredAgainst {
			continue
		}
		tally, ok := tallies[*shot.ShooterPlayerID]
		if !ok {
			continue
		}
		tally.shots++
		if shot.Scored {
			tally.scoredShots++
		}
	}
	for _, goal := range goals {
		if tally, ok := tallies[goal.ScorerPlayerID]; ok {
			tally.goalRecords++
		}
		for _, assist := range []*uuid.UUID{goal.Assist1PlayerID, goal.Assist2PlayerID} {
			if assist == nil {
				continue
			}
			if tally, ok := tallies[*assist]; ok {
				tally.assists++
			}
		}
	}
	for _, faceoff := range faceoffs {
		if tally, ok := tallies[faceoff.PlayerID]; ok {
			tally.taken += faceoff.Taken
			tally.won += faceoff.Won
		}
	}

	results := make([]PlayerAnalytics, 0, len(players))
	for _, player := range players {
		tally := tallies[player.ID]
		playerGoals := tally.scoredShots
		if tally.goalRecords > playerGoals {
			playerGoals = tally.goalRecords
		}
		results = append(results, PlayerAnalytics{
			PlayerID:           player.ID,
			Name:               player.Name,
			JerseyNumber:       player.JerseyNumber,
			Shots:              tally.shots,
			Goals:              playerGoals,
			Assists:            tally.assists,
			ShootingPercentage: ShootingPercentage(playerGoals, tally.shots),
			FaceoffsTaken:      tally.taken,
			FaceoffsWon:        tally.won,
			FaceoffPercentage:  ShootingPercentage(tally.won, tally.taken),
		})
	}
	return results, nil
}

// GetGameAnalytics summarizes one game with a per-period breakdown
func (s *AnalyticsService) GetGameAnalytics(userID, gameID uuid.UUID) (*GameAnalytics, error) {
	if _, err := s.games.ResolveGame(userID, gameID); err != nil {
		return nil, err
	}

	shots, err := s.shotRepo.GetByGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shots: %w", err)
	}
	goals, err := s.goalRepo.GetByGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	periods, err := s.periodRepo.GetByGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}

	result := &GameAnalytics{GameID: gameID}
	periodNumberByID := make(map[uuid.UUID]int, len(periods))
	periodStats := make(map[int]*PeriodStats, len(periods))
	for _, period := range periods {
		periodNumberByID[period.ID] = period.PeriodNumber
		periodStats[period.PeriodNumber] = &PeriodStats{PeriodNumber: period.PeriodNumber}
	}

	scoredShots := 0
	scoredByPeriod := make(map[int]int, len(periods))
	goalRecordsByPeriod := make(map[int]int, len(periods))
	for _, shot := range shots {
		periodNumber := periodNumberByID[shot.PeriodID]
		stats := periodStats[periodNumber]
		if shot.ScoredAgainst {
			result.ShotsAgainst++
			if stats != nil {
				stats.ShotsAgainst++
			}
			if shot.Scored {
				result.GoalsAgainst++
				if stats != nil {
					stats.GoalsAgainst++
				}
			}
			continue
		}
		result.ShotsFor++
		if stats != nil {
			stats.ShotsFor++
		}
		if shot.Scored {
			scoredShots++
			scoredByPeriod[periodNumber]++
		}
	}
	for _, goal := range goals {
		goalRecordsByPeriod[goal.PeriodNumber]++
	}
	result.GoalsFor = s.reconcileGoals(gameID, scoredShots, len(goals))
	result.ShootingPercentage = ShootingPercentage(result.GoalsFor, result.ShotsFor)

	for _, period := range periods {
		stats := periodStats[period.PeriodNumber]
		stats.GoalsFor = s.reconcileGoals(gameID, scoredByPeriod[period.PeriodNumber], goalRecordsByPeriod[period.PeriodNumber])
		result.Periods = append(result.Periods, *stats)
	}
	return result, nil
}

// reconcileGoals merges the two goal tracking mechanisms. Shots marked as
// scored and explicit goal records may double-track the same goal, so the
// larger of the two counts wins. A divergence is logged for inspection.
func (s *AnalyticsService) reconcileGoals(gameID uuid.UUID, scoredShots, goalRecords int) int {
	if scoredShots != goalRecords && scoredShots > 0 && goalRecords > 0 {
		s.log.WithFields(map[string]interface{}{
			"game_id":      gameID,
			"scored_shots": scoredShots,
			"goal_records": goalRecords,
		}).Debug("Goal tracking counts diverge, using the larger")
	}
	if goalRecords > scoredShots {
		return goalRecords
	}
	return scoredShots
}
