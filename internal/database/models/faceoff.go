package models

import "github.com/google/uuid"

// Faceoff holds the per-game faceoff counters of a player. A player has at
// most one faceoff row per game, and won never exceeds taken.
type Faceoff struct {
	BaseModel
	GameID      uuid.UUID `json:"game_id" gorm:"type:uuid;not null;uniqueIndex:idx_faceoffs_game_player,priority:1"`
	PlayerID    uuid.UUID `json:"player_id" gorm:"type:uuid;not null;uniqueIndex:idx_faceoffs_game_player,priority:2"`
	Taken       int       `json:"taken" gorm:"not null;default:0" validate:"min=0"`
	Won         int       `json:"won" gorm:"not null;default:0" validate:"min=0"`
	CreatedByID uuid.UUID `json:"created_by_id" gorm:"type:uuid;not null"`
}

// TableName returns the table name for Faceoff
func (Faceoff) TableName() string {
	return "faceoffs"
}
