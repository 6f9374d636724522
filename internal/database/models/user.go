package models

import "time"

// User represents a registered account
type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"not null;uniqueIndex;size:254" validate:"required,email"`
	PasswordHash string     `json:"-" gorm:"not null;size:100"`
	DisplayName  string     `json:"display_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`

	// Relationships
	Memberships []TeamMember `json:"memberships,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
