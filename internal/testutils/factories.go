package testutils

import (
	"time"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"

	"github.com/google/uuid"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The email is derived from
// the id so every user is unique.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        "user-" + id.String()[:8] + "@test.com",
		PasswordHash: "$2a$12$C6UzMDM.H6dfI/f/IKcEeO5ukNObXW7wEoRkG9hyvNPIxs2l0Yjwa",
		DisplayName:  "Test User",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithDisplayName sets a custom display name for the user
func (f *UserFactory) WithDisplayName(name string) *models.User {
	user := f.Create()
	user.DisplayName = name
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique join code derived from the id
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	code := make([]byte, 7)
	for i := range code {
		code[i] = codeAlphabet[int(id[i])%len(codeAlphabet)]
	}
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Team",
		Code:        string(code),
		CreatedByID: uuid.New(),
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithCreator sets the creating user for the team
func (f *TeamFactory) WithCreator(userID uuid.UUID) *models.Team {
	team := f.Create()
	team.CreatedByID = userID
	return team
}

// WithCode sets a custom join code for the team
func (f *TeamFactory) WithCode(code string) *models.Team {
	team := f.Create()
	team.Code = code
	return team
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a membership with the member role
func (f *TeamMemberFactory) Create(teamID, userID uuid.UUID) *models.TeamMember {
	return &models.TeamMember{
		TeamID: teamID,
		UserID: userID,
		Role:   models.TeamRoleMember,
	}
}

// Admin creates a membership with the admin role
func (f *TeamMemberFactory) Admin(teamID, userID uuid.UUID) *models.TeamMember {
	member := f.Create(teamID, userID)
	member.Role = models.TeamRoleAdmin
	return member
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with a unique name derived from the id
func (f *PlayerFactory) Create(teamID uuid.UUID) *models.Player {
	id := uuid.New()
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: teamID,
		Name:   "Player " + id.String()[:8],
		Type:   models.PlayerTypeTeamPlayer,
	}
}

// WithName sets a custom name for the player
func (f *PlayerFactory) WithName(teamID uuid.UUID, name string) *models.Player {
	player := f.Create(teamID)
	player.Name = name
	return player
}

// WithJerseyNumber sets a jersey number for the player
func (f *PlayerFactory) WithJerseyNumber(teamID uuid.UUID, number int) *models.Player {
	player := f.Create(teamID)
	player.JerseyNumber = &number
	return player
}

// Substitute creates a substitute player
func (f *PlayerFactory) Substitute(teamID uuid.UUID) *models.Player {
	player := f.Create(teamID)
	player.Type = models.PlayerTypeSubstitute
	return player
}

// GameFactory provides methods to create test Game data
type GameFactory struct{}

// NewGameFactory creates a new GameFactory
func NewGameFactory() *GameFactory {
	return &GameFactory{}
}

// Create creates a test Game without periods; pair with PeriodFactory when
// the test needs them.
func (f *GameFactory) Create(teamID, createdByID uuid.UUID) *models.Game {
	return &models.Game{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:      teamID,
		Opponent:    "Test Opponent",
		Location:    "Test Arena",
		CreatedByID: createdByID,
	}
}

// PeriodFactory provides methods to create test Period data
type PeriodFactory struct{}

// NewPeriodFactory creates a new PeriodFactory
func NewPeriodFactory() *PeriodFactory {
	return &PeriodFactory{}
}

// Create creates one period
func (f *PeriodFactory) Create(gameID uuid.UUID, number int, direction models.AttackingDirection) *models.Period {
	return &models.Period{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GameID:             gameID,
		PeriodNumber:       number,
		AttackingDirection: direction,
	}
}

// CreateAll creates the standard three periods with right, left, right
// directions.
func (f *PeriodFactory) CreateAll(gameID uuid.UUID) []*models.Period {
	return []*models.Period{
		f.Create(gameID, 1, models.AttackingDirectionRight),
		f.Create(gameID, 2, models.AttackingDirectionLeft),
		f.Create(gameID, 3, models.AttackingDirectionRight),
	}
}

// ShotFactory provides methods to create test Shot data
type ShotFactory struct{}

// NewShotFactory creates a new ShotFactory
func NewShotFactory() *ShotFactory {
	return &ShotFactory{}
}

// Create creates a shot at center ice
func (f *ShotFactory) Create(gameID, periodID, createdByID uuid.UUID) *models.Shot {
	return &models.Shot{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GameID:      gameID,
		PeriodID:    periodID,
		X:           0.5,
		Y:           0.5,
		CreatedByID: createdByID,
	}
}

// Scored creates a shot marked as a goal
func (f *ShotFactory) Scored(gameID, periodID, createdByID uuid.UUID) *models.Shot {
	shot := f.Create(gameID, periodID, createdByID)
	shot.Scored = true
	return shot
}

// Against creates an opponent shot
func (f *ShotFactory) Against(gameID, periodID, createdByID uuid.UUID) *models.Shot {
	shot := f.Create(gameID, periodID, createdByID)
	shot.ScoredAgainst = true
	return shot
}

// ByPlayer creates a shot attributed to a shooter
func (f *ShotFactory) ByPlayer(gameID, periodID, playerID, createdByID uuid.UUID) *models.Shot {
	shot := f.Create(gameID, periodID, createdByID)
	shot.ShooterPlayerID = &playerID
	return shot
}

// GoalFactory provides methods to create test Goal data
type GoalFactory struct{}

// NewGoalFactory creates a new GoalFactory
func NewGoalFactory() *GoalFactory {
	return &GoalFactory{}
}

// Create creates a goal record in the first period
func (f *GoalFactory) Create(gameID, scorerID, createdByID uuid.UUID) *models.Goal {
	return &models.Goal{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GameID:         gameID,
		PeriodNumber:   1,
		ScorerPlayerID: scorerID,
		CreatedByID:    createdByID,
	}
}

// WithAssists creates a goal record with up to two assisters
func (f *GoalFactory) WithAssists(gameID, scorerID, createdByID uuid.UUID, assists ...uuid.UUID) *models.Goal {
	goal := f.Create(gameID, scorerID, createdByID)
	if len(assists) > 0 {
		goal.Assist1PlayerID = &assists[0]
	}
	if len(assists) > 1 {
		goal.Assist2PlayerID = &assists[1]
	}
	return goal
}

// FaceoffFactory provides methods to create test Faceoff data
type FaceoffFactory struct{}

// NewFaceoffFactory creates a new FaceoffFactory
func NewFaceoffFactory() *FaceoffFactory {
	return &FaceoffFactory{}
}

// Create creates a faceoff row with the given counters
func (f *FaceoffFactory) Create(gameID, playerID, createdByID uuid.UUID, taken, won int) *models.Faceoff {
	return &models.Faceoff{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GameID:      gameID,
		PlayerID:    playerID,
		Taken:       taken,
		Won:         won,
		CreatedByID: createdByID,
	}
}

// FactorySet bundles all factories for convenient access in tests
type FactorySet struct {
	User       *UserFactory
	Team       *TeamFactory
	TeamMember *TeamMemberFactory
	Player     *PlayerFactory
	Game       *GameFactory
	Period     *PeriodFactory
	Shot       *ShotFactory
	Goal       *GoalFactory
	Faceoff    *FaceoffFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Team:       NewTeamFactory(),
		TeamMember: NewTeamMemberFactory(),
		Player:     NewPlayerFactory(),
		Game:       NewGameFactory(),
		Period:     NewPeriodFactory(),
		Shot:       NewShotFactory(),
		Goal:       NewGoalFactory(),
		Faceoff:    NewFaceoffFactory(),
	}
}
