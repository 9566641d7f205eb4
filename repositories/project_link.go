package repositories

import (
	"context"

	"github.com/projectdesk-api/models"
	"gorm.io/gorm"
)

// ProjectLinkRepository handles database operations for Figma and Drive links
type ProjectLinkRepository struct {
	db *gorm.DB
}

// NewProjectLinkRepository creates a new link repository instance
func NewProjectLinkRepository(db *gorm.DB) *ProjectLinkRepository {
	return &ProjectLinkRepository{db: db}
}

// FindByID retrieves a link by its ID
func (r *ProjectLinkRepository) FindByID(ctx context.Context, id uint) (*models.ProjectLink, error) {
	var link models.ProjectLink
	if err := r.db.WithContext(ctx).First(&link, id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// FindByProject retrieves links of a project, optionally restricted to one kind
func (r *ProjectLinkRepository) FindByProject(ctx context.Context, projectID uint, kind models.LinkKind) ([]models.ProjectLink, error) {
	var links []models.ProjectLink
	db := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if kind != "" {
		db = db.Where("kind = ?", kind)
	}
	result := db.Order("id").Find(&links)
	return links, result.Error
}

// Create inserts a new link
func (r *ProjectLinkRepository) Create(ctx context.Context, link *models.ProjectLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// Update modifies an existing link
func (r *ProjectLinkRepository) Update(ctx context.Context, link *models.ProjectLink) error {
	return r.db.WithContext(ctx).Save(link).Error
}

// Delete removes a link
func (r *ProjectLinkRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ProjectLink{}, id).Error
}
