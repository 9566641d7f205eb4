package models

import (
	"time"

	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleUser           Role = "USER"
	RoleProjectManager Role = "PROJECT_MANAGER"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleProjectManager:
		return true
	}
	return false
}

// User represents a user in the system
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null"`
	PhoneNumber  string         `json:"phoneNumber" gorm:"index"`
	Role         Role           `json:"role" gorm:"type:varchar(20);default:'USER'"`
	Token        *string        `json:"-" gorm:"index"` // Current bearer token, never exposed in JSON
	LastLogoutAt *time.Time     `json:"lastLogoutAt"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
