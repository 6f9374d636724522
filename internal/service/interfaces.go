package service

import (
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Register(req *RegisterRequest) (*AuthResponse, error)
	Login(req *LoginRequest) (*AuthResponse, error)
	GetByID(id uuid.UUID) (*models.User, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(userID uuid.UUID, req *CreateTeamRequest) (*models.Team, error)
	GetForUser(userID uuid.UUID) ([]models.Team, error)
	Get(userID, teamID uuid.UUID) (*models.Team, error)
	Update(userID, teamID uuid.UUID, req *UpdateTeamRequest) (*models.Team, error)
	Join(userID uuid.UUID, code string) (*models.Team, error)
	Leave(userID, teamID uuid.UUID) error
	Delete(userID, teamID uuid.UUID, confirmed bool) (*DeleteTeamResult, error)
	ListMembers(userID, teamID uuid.UUID) ([]models.TeamMember, error)
	UpdateMemberRole(userID, teamID, memberUserID uuid.UUID, role models.TeamRole) (*models.TeamMember, error)
	RemoveMember(userID, teamID, memberUserID uuid.UUID) error
}

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	Create(userID, teamID uuid.UUID, req *CreatePlayerRequest) (*models.Player, error)
	GetByTeam(userID, teamID uuid.UUID) ([]models.Player, error)
	Update(userID, playerID uuid.UUID, req *UpdatePlayerRequest) (*models.Player, error)
	Delete(userID, playerID uuid.UUID) error
}

// GameServiceInterface defines the interface for game service
type GameServiceInterface interface {
	Create(userID, teamID uuid.UUID, req *CreateGameRequest) (*models.Game, error)
	GetByTeam(userID, teamID uuid.UUID) ([]models.Game, error)
	Get(userID, gameID uuid.UUID) (*models.Game, error)
	Update(userID, gameID uuid.UUID, req *UpdateGameRequest) (*models.Game, error)
	Delete(userID, gameID uuid.UUID) error
	GetPeriods(userID, gameID uuid.UUID) ([]models.Period, error)
	UpdatePeriod(userID, gameID, periodID uuid.UUID, req *UpdatePeriodRequest) ([]models.Period, error)
	SetDirections(userID, gameID uuid.UUID, req *SetDirectionsRequest) ([]models.Period, error)
	GetGamePlayers(userID, gameID uuid.UUID) ([]models.GamePlayer, error)
	UpdateGamePlayer(userID, gameID, playerID uuid.UUID, req *UpdateGamePlayerRequest) (*models.GamePlayer, error)
}

// ShotServiceInterface defines the interface for shot service
type ShotServiceInterface interface {
	Create(userID, gameID uuid.UUID, req *CreateShotRequest) (*models.Shot, error)
	GetByGame(userID, gameID uuid.UUID) ([]models.Shot, error)
	Update(userID, shotID uuid.UUID, req *UpdateShotRequest) (*models.Shot, error)
	Delete(userID, shotID uuid.UUID) error
	DeleteByGame(userID, gameID uuid.UUID, periodID *uuid.UUID) (int64, error)
}

// GoalServiceInterface defines the interface for goal service
type GoalServiceInterface interface {
	Create(userID, gameID uuid.UUID, req *CreateGoalRequest) (*models.Goal, error)
	GetByGame(userID, gameID uuid.UUID) ([]models.Goal, error)
	Update(userID, goalID uuid.UUID, req *UpdateGoalRequest) (*models.Goal, error)
	Delete(userID, goalID uuid.UUID) error
}

// FaceoffServiceInterface defines the interface for faceoff service
type FaceoffServiceInterface interface {
	Create(userID, gameID uuid.UUID, req *CreateFaceoffRequest) (*models.Faceoff, error)
	GetByGame(userID, gameID uuid.UUID) ([]models.Faceoff, error)
	Increment(userID, faceoffID uuid.UUID, req *IncrementFaceoffRequest) (*models.Faceoff, error)
	Update(userID, faceoffID uuid.UUID, req *UpdateFaceoffRequest) (*models.Faceoff, error)
	Delete(userID, faceoffID uuid.UUID) error
}

// AnalyticsServiceInterface defines the interface for analytics service
type AnalyticsServiceInterface interface {
	GetTeamAnalytics(userID, teamID uuid.UUID) (*TeamAnalytics, error)
	GetTeamPlayerAnalytics(userID, teamID uuid.UUID) ([]PlayerAnalytics, error)
	GetGameAnalytics(userID, gameID uuid.UUID) (*GameAnalytics, error)
}
