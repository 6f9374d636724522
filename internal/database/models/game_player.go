package models

import "github.com/google/uuid"

// GamePlayer records whether a roster player participates in a specific game
// and an optional per-game jersey number override.
type GamePlayer struct {
	BaseModel
	GameID         uuid.UUID `json:"game_id" gorm:"type:uuid;not null;uniqueIndex:idx_game_players_game_player,priority:1"`
	PlayerID       uuid.UUID `json:"player_id" gorm:"type:uuid;not null;uniqueIndex:idx_game_players_game_player,priority:2"`
	Included       bool      `json:"included" gorm:"not null;default:false"`
	NumberOverride *int      `json:"number_override,omitempty" validate:"omitempty,min=0,max=99"`

	// Relationships
	Player *Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
}

// TableName returns the table name for GamePlayer
func (GamePlayer) TableName() string {
	return "game_players"
}
