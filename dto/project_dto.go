package dto

import (
	"time"

	"github.com/projectdesk-api/models"
)

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateProjectRequest represents the request payload for updating an existing project
type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// MemberRequest names the user to add to a project
type MemberRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

// ProjectResponse represents the standard response format for a project
type ProjectResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectDetailResponse is a project with everything attached to it
type ProjectDetailResponse struct {
	ProjectResponse
	Members      []UserResponse          `json:"members"`
	Repositories []GitRepositoryResponse `json:"repositories"`
	Links        []ProjectLinkResponse   `json:"links"`
	Documents    []HelpDocumentResponse  `json:"documents"`
}

// NewProjectResponse converts a project entity into its view
func NewProjectResponse(p models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProjectResponses converts a list of projects
func ProjectResponses(projects []models.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectResponse(p))
	}
	return out
}

// NewProjectDetailResponse converts a project loaded with its relations
func NewProjectDetailResponse(p models.Project) ProjectDetailResponse {
	return ProjectDetailResponse{
		ProjectResponse: NewProjectResponse(p),
		Members:         UserResponses(p.Members),
		Repositories:    GitRepositoryResponses(p.Repositories),
		Links:           ProjectLinkResponses(p.Links),
		Documents:       HelpDocumentResponses(p.Documents),
	}
}
