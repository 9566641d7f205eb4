package repositories

import (
	"context"

	"github.com/projectdesk-api/models"
	"gorm.io/gorm"
)

// GitRepositoryRepository handles database operations for GitHub repository records
type GitRepositoryRepository struct {
	db *gorm.DB
}

// NewGitRepositoryRepository creates a new repository-record repository instance
func NewGitRepositoryRepository(db *gorm.DB) *GitRepositoryRepository {
	return &GitRepositoryRepository{db: db}
}

// FindByID retrieves a repository record by its ID
func (r *GitRepositoryRepository) FindByID(ctx context.Context, id uint) (*models.GitRepository, error) {
	var repo models.GitRepository
	if err := r.db.WithContext(ctx).First(&repo, id).Error; err != nil {
		return nil, err
	}
	return &repo, nil
}

// FindByProjectID retrieves all repositories attached to a project
func (r *GitRepositoryRepository) FindByProjectID(ctx context.Context, projectID uint) ([]models.GitRepository, error) {
	var repos []models.GitRepository
	result := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id").Find(&repos)
	return repos, result.Error
}

// Create inserts a new repository record
func (r *GitRepositoryRepository) Create(ctx context.Context, repo *models.GitRepository) error {
	return r.db.WithContext(ctx).Create(repo).Error
}

// Update modifies an existing repository record
func (r *GitRepositoryRepository) Update(ctx context.Context, repo *models.GitRepository) error {
	return r.db.WithContext(ctx).Save(repo).Error
}

// Delete removes a repository record
func (r *GitRepositoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.GitRepository{}, id).Error
}
