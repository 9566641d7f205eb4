package services

import (
	"context"
	"fmt"

	"github.com/projectdesk-api/dto"
	"github.com/projectdesk-api/models"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo ProjectRepository
	userRepo    UserRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo ProjectRepository, userRepo UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// ListProjects retrieves all live projects
func (s *ProjectService) ListProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ProjectResponses(projects), nil
}

// GetProjectDetail retrieves a project with its members, repositories, links and documents
func (s *ProjectService) GetProjectDetail(ctx context.Context, id uint) (*dto.ProjectDetailResponse, error) {
	project, err := s.projectRepo.WithDetails(ctx, id)
	if isNotFound(err) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	resp := dto.NewProjectDetailResponse(*project)
	return &resp, nil
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.projectRepo.Create(ctx, &project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

// UpdateProject changes a project's name and description
func (s *ProjectService) UpdateProject(ctx context.Context, id uint, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if isNotFound(err) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}

	project.Name = req.Name
	project.Description = req.Description
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	resp := dto.NewProjectResponse(*project)
	return &resp, nil
}

// DeleteProject soft-deletes a project
func (s *ProjectService) DeleteProject(ctx context.Context, id uint) error {
	if err := s.requireProject(ctx, id); err != nil {
		return err
	}
	return s.projectRepo.Delete(ctx, id)
}

// AddMember adds a user to a project directly, without an access request
func (s *ProjectService) AddMember(ctx context.Context, projectID, userID uint) error {
	if err := s.requireProject(ctx, projectID); err != nil {
		return err
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	return s.projectRepo.AddMember(ctx, projectID, userID)
}

// RemoveMember removes a user from a project
func (s *ProjectService) RemoveMember(ctx context.Context, projectID, userID uint) error {
	if err := s.requireProject(ctx, projectID); err != nil {
		return err
	}
	return s.projectRepo.RemoveMember(ctx, projectID, userID)
}

func (s *ProjectService) requireProject(ctx context.Context, id uint) error {
	exists, err := s.projectRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProjectNotFound
	}
	return nil
}
