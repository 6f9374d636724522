package models

import "github.com/google/uuid"

// Shot is a single recorded shot. The rink dimensions are stored only so the
// client can rescale the coordinates; the backend never interprets them.
type Shot struct {
	BaseModel
	GameID          uuid.UUID  `json:"game_id" gorm:"type:uuid;not null;index"`
	PeriodID        uuid.UUID  `json:"period_id" gorm:"type:uuid;not null;index"`
	ShooterPlayerID *uuid.UUID `json:"shooter_player_id,omitempty" gorm:"type:uuid"`
	X               float64    `json:"x" gorm:"not null"`
	Y               float64    `json:"y" gorm:"not null"`
	RinkWidth       *float64   `json:"rink_width,omitempty"`
	RinkHeight      *float64   `json:"rink_height,omitempty"`
	Scored          bool       `json:"scored" gorm:"not null;default:false"`
	ScoredAgainst   bool       `json:"scored_against" gorm:"not null;default:false"`
	CreatedByID     uuid.UUID  `json:"created_by_id" gorm:"type:uuid;not null"`
}

// TableName returns the table name for Shot
func (Shot) TableName() string {
	return "shots"
}
