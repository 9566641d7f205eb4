package repositories

import (
	"context"

	"github.com/projectdesk-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccessRequestRepository handles database operations for access requests.
// Every list keeps insertion order.
type AccessRequestRepository struct {
	db *gorm.DB
}

// NewAccessRequestRepository creates a new access request repository instance
func NewAccessRequestRepository(db *gorm.DB) *AccessRequestRepository {
	return &AccessRequestRepository{db: db}
}

// withRelations preloads the subject user (even if soft-deleted) and the project
func (r *AccessRequestRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Project", func(db *gorm.DB) *gorm.DB { return db.Unscoped() })
}

// Create inserts a new access request
func (r *AccessRequestRepository) Create(ctx context.Context, req *models.AccessRequest) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(req).Error
}

// FindAll retrieves every access request regardless of state
func (r *AccessRequestRepository) FindAll(ctx context.Context) ([]models.AccessRequest, error) {
	var requests []models.AccessRequest
	result := r.withRelations(ctx).Order("id").Find(&requests)
	return requests, result.Error
}

// FindActive retrieves requests whose user is live and whose project, when set, is live
func (r *AccessRequestRepository) FindActive(ctx context.Context) ([]models.AccessRequest, error) {
	var requests []models.AccessRequest
	result := r.withRelations(ctx).
		Joins("JOIN users ON users.id = access_requests.user_id AND users.deleted_at IS NULL").
		Joins("LEFT JOIN projects ON projects.id = access_requests.project_id").
		Where("access_requests.project_id IS NULL OR projects.deleted_at IS NULL").
		Order("access_requests.id").
		Find(&requests)
	return requests, result.Error
}

// FindByID retrieves an access request by its ID
func (r *AccessRequestRepository) FindByID(ctx context.Context, id uint) (*models.AccessRequest, error) {
	var req models.AccessRequest
	if err := r.withRelations(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// FindByPMName retrieves every request submitted by a project manager
func (r *AccessRequestRepository) FindByPMName(ctx context.Context, pmName string) ([]models.AccessRequest, error) {
	var requests []models.AccessRequest
	result := r.withRelations(ctx).Where("pm_name = ?", pmName).Order("id").Find(&requests)
	return requests, result.Error
}

// FindUnreadByPMName retrieves decided requests the project manager has not acknowledged
func (r *AccessRequestRepository) FindUnreadByPMName(ctx context.Context, pmName string) ([]models.AccessRequest, error) {
	var requests []models.AccessRequest
	result := r.withRelations(ctx).
		Where("pm_name = ? AND updated = ? AND pm_notified = ?", pmName, true, false).
		Order("id").
		Find(&requests)
	return requests, result.Error
}

// Save persists the decision and notification flags of an existing request
func (r *AccessRequestRepository) Save(ctx context.Context, req *models.AccessRequest) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(req).Error
}

// SaveDecision persists a decision and, for a granted request with a project,
// the project membership in one transaction
func (r *AccessRequestRepository) SaveDecision(ctx context.Context, req *models.AccessRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(req).Error; err != nil {
			return err
		}
		if req.Allowed && req.ProjectID != nil {
			return tx.Exec(addMemberSQL, *req.ProjectID, req.UserID).Error
		}
		return nil
	})
}

// DeleteAll removes every access request. Errors are returned unwrapped.
func (r *AccessRequestRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.AccessRequest{}).Error
}
