package models

import "github.com/google/uuid"

// Player is a roster entry for a team. Name is unique within the team, and
// the jersey number (when present) is unique within the team too.
type Player struct {
	BaseModel
	TeamID       uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_players_team_name,priority:1"`
	Name         string     `json:"name" gorm:"not null;size:100;uniqueIndex:idx_players_team_name,priority:2" validate:"required,min=1,max=100"`
	JerseyNumber *int       `json:"jersey_number,omitempty" validate:"omitempty,min=0,max=99"`
	Type         PlayerType `json:"type" gorm:"not null;size:20;default:'TEAM_PLAYER'" validate:"required,oneof=TEAM_PLAYER SUBSTITUTE"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
