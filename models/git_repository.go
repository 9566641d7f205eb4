package models

import "time"

// GitRepository is a GitHub repository attached to a project
type GitRepository struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProjectID uint      `json:"projectId" gorm:"not null;index"`
	Owner     string    `json:"owner" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	URL       string    `json:"url" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
