package services

import (
	"context"
	"fmt"

	"github.com/projectdesk-api/dto"
	"github.com/projectdesk-api/models"
	"github.com/projectdesk-api/utils"
	"github.com/sirupsen/logrus"
)

// AccessRequestService runs the access request workflow:
// PENDING -> DECIDED (allowed set) -> ACKNOWLEDGED (PM notified).
// Lookups by id that miss are reported through a found flag, never as errors.
type AccessRequestService struct {
	requests AccessRequestRepository
	users    UserRepository
	projects ProjectRepository
	mailer   Mailer
}

// NewAccessRequestService creates a new access request service instance
func NewAccessRequestService(requests AccessRequestRepository, users UserRepository, projects ProjectRepository, mailer Mailer) *AccessRequestService {
	return &AccessRequestService{
		requests: requests,
		users:    users,
		projects: projects,
		mailer:   mailer,
	}
}

// CreateRequest stores a new PENDING request. Duplicates are allowed.
func (s *AccessRequestService) CreateRequest(ctx context.Context, req dto.CreateAccessRequestRequest) (*dto.AccessRequestSummary, error) {
	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if req.ProjectID != nil {
		exists, err := s.projects.Exists(ctx, *req.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("find project: %w", err)
		}
		if !exists {
			return nil, ErrProjectNotFound
		}
	}

	record := models.AccessRequest{
		PMName:             req.PMName,
		RequestDescription: req.RequestDescription,
		UserID:             req.UserID,
		ProjectID:          req.ProjectID,
	}
	if err := s.requests.Create(ctx, &record); err != nil {
		return nil, fmt.Errorf("create access request: %w", err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"requestId": record.ID,
		"pmName":    record.PMName,
		"userId":    record.UserID,
	}).Info("Access request submitted")

	summary := dto.NewAccessRequestSummary(record)
	return &summary, nil
}

// GetAllRequests lists every request regardless of state
func (s *AccessRequestService) GetAllRequests(ctx context.Context) ([]dto.AccessRequestSummary, error) {
	requests, err := s.requests.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.AccessRequestSummaries(requests), nil
}

// GetAllActiveRequests lists requests the store considers active
func (s *AccessRequestService) GetAllActiveRequests(ctx context.Context) ([]dto.AccessRequestSummary, error) {
	requests, err := s.requests.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return dto.AccessRequestSummaries(requests), nil
}

// Decide grants or denies a request and returns the response views of every
// active request. When id is unknown nothing is written, found is false and
// the list is empty.
func (s *AccessRequestService) Decide(ctx context.Context, id uint, allowed bool) ([]dto.AccessRequestResponse, bool, error) {
	record, err := s.requests.FindByID(ctx, id)
	if isNotFound(err) {
		return []dto.AccessRequestResponse{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find access request: %w", err)
	}

	record.Decide(allowed)
	if err := s.requests.SaveDecision(ctx, record); err != nil {
		return nil, true, fmt.Errorf("save decision: %w", err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"requestId": record.ID,
		"allowed":   allowed,
	}).Info("Access request decided")

	s.notifyDecision(ctx, *record)

	active, err := s.requests.FindActive(ctx)
	if err != nil {
		return nil, true, fmt.Errorf("list active requests: %w", err)
	}
	return dto.MapToResponseViews(active), true, nil
}

// notifyDecision emails the subject user. Delivery failures are logged only.
func (s *AccessRequestService) notifyDecision(ctx context.Context, record models.AccessRequest) {
	if s.mailer == nil || record.User.Email == "" {
		return
	}
	msg := dto.DecisionMessage(record.User.Name, record.Allowed)
	if err := s.mailer.SendEmail(ctx, record.User.Name, record.User.Email, "Project access request update", msg); err != nil {
		utils.Logger.WithError(err).WithField("requestId", record.ID).Warn("Failed to send decision email")
	}
}

// GetPMUnreadRequests lists a PM's decided requests that are not yet acknowledged
func (s *AccessRequestService) GetPMUnreadRequests(ctx context.Context, pmName string) ([]dto.AccessRequestResponse, error) {
	requests, err := s.requests.FindUnreadByPMName(ctx, pmName)
	if err != nil {
		return nil, err
	}
	return dto.MapToResponseViews(requests), nil
}

// GetPMRequests lists all of a PM's requests regardless of notified state
func (s *AccessRequestService) GetPMRequests(ctx context.Context, pmName string) ([]dto.AccessRequestResponse, error) {
	requests, err := s.requests.FindByPMName(ctx, pmName)
	if err != nil {
		return nil, err
	}
	return dto.MapToResponseViews(requests), nil
}

// MarkNotified records that the PM has read the outcome. Idempotent;
// an unknown id is a silent no-op reported through found.
func (s *AccessRequestService) MarkNotified(ctx context.Context, id uint) (bool, error) {
	record, err := s.requests.FindByID(ctx, id)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find access request: %w", err)
	}

	record.MarkNotified()
	if err := s.requests.Save(ctx, record); err != nil {
		return true, fmt.Errorf("save notified flag: %w", err)
	}
	return true, nil
}

// ClearAllNotifications deletes every access request. Store failures are returned as-is.
func (s *AccessRequestService) ClearAllNotifications(ctx context.Context) error {
	if err := s.requests.DeleteAll(ctx); err != nil {
		return err
	}
	utils.Logger.Info("All access requests cleared")
	return nil
}
