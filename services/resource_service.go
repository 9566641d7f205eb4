package services

import (
	"context"
	"fmt"

	"github.com/projectdesk-api/dto"
	"github.com/projectdesk-api/models"
	"github.com/projectdesk-api/utils"
)

// ResourceService manages what hangs off a project: GitHub repositories,
// Figma/Drive links and help documents. Only metadata is stored.
type ResourceService struct {
	projects  ProjectRepository
	repos     GitRepositoryRepository
	links     ProjectLinkRepository
	documents HelpDocumentRepository
}

// NewResourceService creates a new resource service instance
func NewResourceService(projects ProjectRepository, repos GitRepositoryRepository, links ProjectLinkRepository, documents HelpDocumentRepository) *ResourceService {
	return &ResourceService{
		projects:  projects,
		repos:     repos,
		links:     links,
		documents: documents,
	}
}

func (s *ResourceService) requireProject(ctx context.Context, id uint) error {
	exists, err := s.projects.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProjectNotFound
	}
	return nil
}

// ListRepositories lists the GitHub repositories of a project
func (s *ResourceService) ListRepositories(ctx context.Context, projectID uint) ([]dto.GitRepositoryResponse, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	repos, err := s.repos.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return dto.GitRepositoryResponses(repos), nil
}

// AddRepository attaches a GitHub repository to a project
func (s *ResourceService) AddRepository(ctx context.Context, projectID uint, req dto.GitRepositoryRequest) (*dto.GitRepositoryResponse, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	owner, name, err := repoIdentity(req)
	if err != nil {
		return nil, err
	}
	repo := models.GitRepository{
		ProjectID: projectID,
		Owner:     owner,
		Name:      name,
		URL:       req.URL,
	}
	if err := s.repos.Create(ctx, &repo); err != nil {
		return nil, fmt.Errorf("create repository: %w", err)
	}
	resp := dto.NewGitRepositoryResponse(repo)
	return &resp, nil
}

// repoIdentity validates the GitHub URL and fills owner and name from it when the request omits them
func repoIdentity(req dto.GitRepositoryRequest) (string, string, error) {
	owner, name, err := utils.ParseGitHubURL(req.URL)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidRepositoryURL, err)
	}
	if req.Owner != "" {
		owner = req.Owner
	}
	if req.Name != "" {
		name = req.Name
	}
	return owner, name, nil
}

// GetRepository retrieves a repository record
func (s *ResourceService) GetRepository(ctx context.Context, id uint) (*dto.GitRepositoryResponse, error) {
	repo, err := s.repos.FindByID(ctx, id)
	if isNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	resp := dto.NewGitRepositoryResponse(*repo)
	return &resp, nil
}

// UpdateRepository edits a repository record
func (s *ResourceService) UpdateRepository(ctx context.Context, id uint, req dto.GitRepositoryRequest) (*dto.GitRepositoryResponse, error) {
	repo, err := s.repos.FindByID(ctx, id)
	if isNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	owner, name, err := repoIdentity(req)
	if err != nil {
		return nil, err
	}
	repo.Owner = owner
	repo.Name = name
	repo.URL = req.URL
	if err := s.repos.Update(ctx, repo); err != nil {
		return nil, fmt.Errorf("update repository: %w", err)
	}
	resp := dto.NewGitRepositoryResponse(*repo)
	return &resp, nil
}

// DeleteRepository detaches a repository record
func (s *ResourceService) DeleteRepository(ctx context.Context, id uint) error {
	if _, err := s.repos.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return s.repos.Delete(ctx, id)
}

// ListLinks lists a project's links; an empty kind lists both Figma and Drive links
func (s *ResourceService) ListLinks(ctx context.Context, projectID uint, kind string) ([]dto.ProjectLinkResponse, error) {
	k := models.LinkKind(kind)
	if k != "" && !k.Valid() {
		return nil, ErrInvalidLinkKind
	}
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	links, err := s.links.FindByProject(ctx, projectID, k)
	if err != nil {
		return nil, err
	}
	return dto.ProjectLinkResponses(links), nil
}

// AddLink attaches a Figma or Drive link to a project
func (s *ResourceService) AddLink(ctx context.Context, projectID uint, req dto.ProjectLinkRequest) (*dto.ProjectLinkResponse, error) {
	kind := models.LinkKind(req.Kind)
	if !kind.Valid() {
		return nil, ErrInvalidLinkKind
	}
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	link := models.ProjectLink{
		ProjectID: projectID,
		Kind:      kind,
		Title:     req.Title,
		URL:       req.URL,
	}
	if err := s.links.Create(ctx, &link); err != nil {
		return nil, fmt.Errorf("create link: %w", err)
	}
	resp := dto.NewProjectLinkResponse(link)
	return &resp, nil
}

// UpdateLink edits a link
func (s *ResourceService) UpdateLink(ctx context.Context, id uint, req dto.ProjectLinkRequest) (*dto.ProjectLinkResponse, error) {
	kind := models.LinkKind(req.Kind)
	if !kind.Valid() {
		return nil, ErrInvalidLinkKind
	}
	link, err := s.links.FindByID(ctx, id)
	if isNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	link.Kind = kind
	link.Title = req.Title
	link.URL = req.URL
	if err := s.links.Update(ctx, link); err != nil {
		return nil, fmt.Errorf("update link: %w", err)
	}
	resp := dto.NewProjectLinkResponse(*link)
	return &resp, nil
}

// DeleteLink removes a link
func (s *ResourceService) DeleteLink(ctx context.Context, id uint) error {
	if _, err := s.links.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return s.links.Delete(ctx, id)
}

// ListDocuments lists help documents, scoped to a project when projectID is set
func (s *ResourceService) ListDocuments(ctx context.Context, projectID *uint) ([]dto.HelpDocumentResponse, error) {
	var (
		docs []models.HelpDocument
		err  error
	)
	if projectID != nil {
		docs, err = s.documents.FindByProjectID(ctx, *projectID)
	} else {
		docs, err = s.documents.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return dto.HelpDocumentResponses(docs), nil
}

// GetDocument retrieves a help document
func (s *ResourceService) GetDocument(ctx context.Context, id uint) (*dto.HelpDocumentResponse, error) {
	doc, err := s.documents.FindByID(ctx, id)
	if isNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	resp := dto.NewHelpDocumentResponse(*doc)
	return &resp, nil
}

// CreateDocument stores a new help document
func (s *ResourceService) CreateDocument(ctx context.Context, req dto.HelpDocumentRequest) (*dto.HelpDocumentResponse, error) {
	if req.ProjectID != nil {
		if err := s.requireProject(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
	}
	doc := models.HelpDocument{
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Body:      req.Body,
		URL:       req.URL,
	}
	if err := s.documents.Create(ctx, &doc); err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	resp := dto.NewHelpDocumentResponse(doc)
	return &resp, nil
}

// UpdateDocument edits a help document
func (s *ResourceService) UpdateDocument(ctx context.Context, id uint, req dto.HelpDocumentRequest) (*dto.HelpDocumentResponse, error) {
	doc, err := s.documents.FindByID(ctx, id)
	if isNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if req.ProjectID != nil {
		if err := s.requireProject(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
	}
	doc.ProjectID = req.ProjectID
	doc.Title = req.Title
	doc.Body = req.Body
	doc.URL = req.URL
	if err := s.documents.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}
	resp := dto.NewHelpDocumentResponse(*doc)
	return &resp, nil
}

// DeleteDocument removes a help document
func (s *ResourceService) DeleteDocument(ctx context.Context, id uint) error {
	if _, err := s.documents.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return s.documents.Delete(ctx, id)
}
