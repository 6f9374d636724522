package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember links a user to a team with a role. The (team_id, user_id) pair
// is the primary key; a user holds at most one membership per team.
type TeamMember struct {
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	Role      TeamRole  `json:"role" gorm:"not null;size:10;default:'member'" validate:"required,oneof=member admin"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// IsAdmin reports whether this membership carries the admin role
func (m *TeamMember) IsAdmin() bool {
	return m.Role == TeamRoleAdmin
}
