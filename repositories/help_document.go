package repositories

import (
	"context"

	"github.com/projectdesk-api/models"
	"gorm.io/gorm"
)

// HelpDocumentRepository handles database operations for help documents
type HelpDocumentRepository struct {
	db *gorm.DB
}

// NewHelpDocumentRepository creates a new help document repository instance
func NewHelpDocumentRepository(db *gorm.DB) *HelpDocumentRepository {
	return &HelpDocumentRepository{db: db}
}

// FindAll retrieves every help document
func (r *HelpDocumentRepository) FindAll(ctx context.Context) ([]models.HelpDocument, error) {
	var docs []models.HelpDocument
	result := r.db.WithContext(ctx).Order("id").Find(&docs)
	return docs, result.Error
}

// FindByProjectID retrieves documents scoped to a project
func (r *HelpDocumentRepository) FindByProjectID(ctx context.Context, projectID uint) ([]models.HelpDocument, error) {
	var docs []models.HelpDocument
	result := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id").Find(&docs)
	return docs, result.Error
}

// FindByID retrieves a document by its ID
func (r *HelpDocumentRepository) FindByID(ctx context.Context, id uint) (*models.HelpDocument, error) {
	var doc models.HelpDocument
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create inserts a new document
func (r *HelpDocumentRepository) Create(ctx context.Context, doc *models.HelpDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// Update modifies an existing document
func (r *HelpDocumentRepository) Update(ctx context.Context, doc *models.HelpDocument) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

// Delete removes a document
func (r *HelpDocumentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.HelpDocument{}, id).Error
}
