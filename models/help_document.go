package models

import "time"

// HelpDocument is a help article, optionally scoped to a project
type HelpDocument struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProjectID *uint     `json:"projectId" gorm:"index"`
	Title     string    `json:"title" gorm:"not null"`
	Body      string    `json:"body" gorm:"type:text"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
