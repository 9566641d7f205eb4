package services

import (
	"context"
	"time"

	"github.com/projectdesk-api/models"
)

// The services depend on these narrow interfaces; the gorm implementations live
// in package repositories and in-memory ones in repositories/fake.

// UserRepository is the storage the auth and user services need
type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	FindByToken(ctx context.Context, token string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

// ProjectRepository is the storage the project service needs
type ProjectRepository interface {
	FindAll(ctx context.Context) ([]models.Project, error)
	FindByID(ctx context.Context, id uint) (*models.Project, error)
	WithDetails(ctx context.Context, id uint) (*models.Project, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint) error
	AddMember(ctx context.Context, projectID, userID uint) error
	RemoveMember(ctx context.Context, projectID, userID uint) error
}

// AccessRequestRepository is the access request store
type AccessRequestRepository interface {
	Create(ctx context.Context, req *models.AccessRequest) error
	FindAll(ctx context.Context) ([]models.AccessRequest, error)
	FindActive(ctx context.Context) ([]models.AccessRequest, error)
	FindByID(ctx context.Context, id uint) (*models.AccessRequest, error)
	FindByPMName(ctx context.Context, pmName string) ([]models.AccessRequest, error)
	FindUnreadByPMName(ctx context.Context, pmName string) ([]models.AccessRequest, error)
	Save(ctx context.Context, req *models.AccessRequest) error
	SaveDecision(ctx context.Context, req *models.AccessRequest) error
	DeleteAll(ctx context.Context) error
}

// GitRepositoryRepository stores GitHub repository records
type GitRepositoryRepository interface {
	FindByID(ctx context.Context, id uint) (*models.GitRepository, error)
	FindByProjectID(ctx context.Context, projectID uint) ([]models.GitRepository, error)
	Create(ctx context.Context, repo *models.GitRepository) error
	Update(ctx context.Context, repo *models.GitRepository) error
	Delete(ctx context.Context, id uint) error
}

// ProjectLinkRepository stores Figma and Drive links
type ProjectLinkRepository interface {
	FindByID(ctx context.Context, id uint) (*models.ProjectLink, error)
	FindByProject(ctx context.Context, projectID uint, kind models.LinkKind) ([]models.ProjectLink, error)
	Create(ctx context.Context, link *models.ProjectLink) error
	Update(ctx context.Context, link *models.ProjectLink) error
	Delete(ctx context.Context, id uint) error
}

// HelpDocumentRepository stores help documents
type HelpDocumentRepository interface {
	FindAll(ctx context.Context) ([]models.HelpDocument, error)
	FindByProjectID(ctx context.Context, projectID uint) ([]models.HelpDocument, error)
	FindByID(ctx context.Context, id uint) (*models.HelpDocument, error)
	Create(ctx context.Context, doc *models.HelpDocument) error
	Update(ctx context.Context, doc *models.HelpDocument) error
	Delete(ctx context.Context, id uint) error
}

// OTPStore keeps one-time codes keyed by phone number with a per-entry TTL
type OTPStore interface {
	Put(ctx context.Context, key, value string, ttl time.Duration) error
	Take(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}

// SMSSender delivers text messages
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// Mailer delivers email
type Mailer interface {
	SendEmail(ctx context.Context, toName, toEmail, subject, body string) error
}
