package models

import "github.com/google/uuid"

// Goal is an explicitly recorded goal with scorer and up to two assisters.
// Goals may double-track shots marked as scored; analytics reconciles the two.
type Goal struct {
	BaseModel
	GameID          uuid.UUID  `json:"game_id" gorm:"type:uuid;not null;index"`
	PeriodNumber    int        `json:"period_number" gorm:"not null" validate:"required,min=1,max=3"`
	ScorerPlayerID  uuid.UUID  `json:"scorer_player_id" gorm:"type:uuid;not null"`
	Assist1PlayerID *uuid.UUID `json:"assist1_player_id,omitempty" gorm:"type:uuid"`
	Assist2PlayerID *uuid.UUID `json:"assist2_player_id,omitempty" gorm:"type:uuid"`
	CreatedByID     uuid.UUID  `json:"created_by_id" gorm:"type:uuid;not null"`
}

// TableName returns the table name for Goal
func (Goal) TableName() string {
	return "goals"
}
