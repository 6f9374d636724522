package models

import (
	"time"

	"github.com/google/uuid"
)

// Period is one of exactly three periods of a game. (game_id, period_number)
// is unique.
type Period struct {
	BaseModel
	GameID             uuid.UUID          `json:"game_id" gorm:"type:uuid;not null;uniqueIndex:idx_periods_game_number,priority:1"`
	PeriodNumber       int                `json:"period_number" gorm:"not null;uniqueIndex:idx_periods_game_number,priority:2" validate:"required,min=1,max=3"`
	AttackingDirection AttackingDirection `json:"attacking_direction" gorm:"not null;size:5" validate:"required,oneof=left right"`
	StartedAt          *time.Time         `json:"started_at,omitempty"`
	EndedAt            *time.Time         `json:"ended_at,omitempty"`
}

// TableName returns the table name for Period
func (Period) TableName() string {
	return "periods"
}
