package models

import (
	"time"
)

// UserRole is the system-wide role carried on the user row and inside tokens.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

// Principal is the authenticated identity extracted from a verified token.
// It is all a service needs to evaluate ownership.
type Principal struct {
	UserID uint     `json:"user_id"`
	Role   UserRole `json:"role"`
}

// IsAdmin reports whether the principal bypasses ownership checks.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
