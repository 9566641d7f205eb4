package models

import (
	"time"

	"gorm.io/gorm"
)

// Project represents a managed project
type Project struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Members      []User          `json:"members,omitempty" gorm:"many2many:project_members"`
	Repositories []GitRepository `json:"repositories,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Links        []ProjectLink   `json:"links,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Documents    []HelpDocument  `json:"documents,omitempty" gorm:"foreignKey:ProjectID"`
}
