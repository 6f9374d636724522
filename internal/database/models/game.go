package models

import (
	"time"

	"github.com/google/uuid"
)

// Game is a single match of a team. Its three periods are created in the
// same transaction as the game itself.
type Game struct {
	BaseModel
	TeamID      uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index"`
	Opponent    string     `json:"opponent,omitempty" gorm:"size:100" validate:"max=100"`
	Location    string     `json:"location,omitempty" gorm:"size:200" validate:"max=200"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	Notes       string     `json:"notes,omitempty" gorm:"size:1000" validate:"max=1000"`
	CreatedByID uuid.UUID  `json:"created_by_id" gorm:"type:uuid;not null"`

	// Relationships
	Periods     []Period     `json:"periods,omitempty" gorm:"foreignKey:GameID"`
	GamePlayers []GamePlayer `json:"game_players,omitempty" gorm:"foreignKey:GameID"`
}

// TableName returns the table name for Game
func (Game) TableName() string {
	return "games"
}
