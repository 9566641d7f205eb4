package repositories

import (
	"context"

	"github.com/projectdesk-api/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindAll retrieves all projects that are not soft-deleted
func (r *ProjectRepository) FindAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.WithContext(ctx).Order("id").Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// WithDetails loads a project with its members, repositories, links and documents
func (r *ProjectRepository) WithDetails(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Repositories").
		Preload("Links").
		Preload("Documents").
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Exists checks if a live (not soft-deleted) project exists
func (r *ProjectRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit("Members", "Repositories", "Links", "Documents").Save(project).Error
}

// Delete removes a project from the database (soft delete)
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Project{}, id).Error
}

const addMemberSQL = "INSERT INTO project_members (project_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING"

// AddMember links a user to a project; adding an existing member is a no-op
func (r *ProjectRepository) AddMember(ctx context.Context, projectID, userID uint) error {
	return r.db.WithContext(ctx).Exec(addMemberSQL, projectID, userID).Error
}

// RemoveMember unlinks a user from a project
func (r *ProjectRepository) RemoveMember(ctx context.Context, projectID, userID uint) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM project_members WHERE project_id = ? AND user_id = ?",
		projectID, userID,
	).Error
}
