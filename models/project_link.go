package models

import "time"

// LinkKind identifies the external tool a link points at
type LinkKind string

const (
	LinkFigma LinkKind = "FIGMA"
	LinkDrive LinkKind = "DRIVE"
)

// Valid reports whether k is a supported link kind
func (k LinkKind) Valid() bool {
	return k == LinkFigma || k == LinkDrive
}

// ProjectLink is a Figma file or Google Drive folder attached to a project
type ProjectLink struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProjectID uint      `json:"projectId" gorm:"not null;index"`
	Kind      LinkKind  `json:"kind" gorm:"type:varchar(10);not null;index"`
	Title     string    `json:"title"`
	URL       string    `json:"url" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
