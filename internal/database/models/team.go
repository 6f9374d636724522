package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a hockey team. Teams are soft-deleted: the Deleted flag is
// set and reads filter it out at the repository layer.
type Team struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Code        string     `json:"code" gorm:"not null;uniqueIndex;size:7"`
	ImageURL    string     `json:"image_url,omitempty" gorm:"size:500"`
	Deleted     bool       `json:"-" gorm:"not null;default:false;index"`
	DeletedAt   *time.Time `json:"-"`
	CreatedByID uuid.UUID  `json:"created_by_id" gorm:"type:uuid;not null"`

	// Relationships
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	Players []Player     `json:"players,omitempty" gorm:"foreignKey:TeamID"`
	Games   []Game       `json:"games,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
