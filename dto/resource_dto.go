package dto

import (
	"time"

	"github.com/projectdesk-api/models"
)

// GitRepositoryRequest attaches or edits a GitHub repository record
type GitRepositoryRequest struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
	URL   string `json:"url" binding:"required,url"`
}

// GitRepositoryResponse is the view of a repository record
type GitRepositoryResponse struct {
	ID        uint      `json:"id"`
	ProjectID uint      `json:"projectId"`
	Owner     string    `json:"owner"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewGitRepositoryResponse converts a repository record into its view
func NewGitRepositoryResponse(r models.GitRepository) GitRepositoryResponse {
	return GitRepositoryResponse{
		ID:        r.ID,
		ProjectID: r.ProjectID,
		Owner:     r.Owner,
		Name:      r.Name,
		URL:       r.URL,
		CreatedAt: r.CreatedAt,
	}
}

// GitRepositoryResponses converts a list of repository records
func GitRepositoryResponses(repos []models.GitRepository) []GitRepositoryResponse {
	out := make([]GitRepositoryResponse, 0, len(repos))
	for _, r := range repos {
		out = append(out, NewGitRepositoryResponse(r))
	}
	return out
}

// ProjectLinkRequest attaches or edits a Figma or Drive link
type ProjectLinkRequest struct {
	Kind  string `json:"kind" binding:"required,oneof=FIGMA DRIVE"`
	Title string `json:"title"`
	URL   string `json:"url" binding:"required,url"`
}

// ProjectLinkResponse is the view of a link
type ProjectLinkResponse struct {
	ID        uint      `json:"id"`
	ProjectID uint      `json:"projectId"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewProjectLinkResponse converts a link into its view
func NewProjectLinkResponse(l models.ProjectLink) ProjectLinkResponse {
	return ProjectLinkResponse{
		ID:        l.ID,
		ProjectID: l.ProjectID,
		Kind:      string(l.Kind),
		Title:     l.Title,
		URL:       l.URL,
		CreatedAt: l.CreatedAt,
	}
}

// ProjectLinkResponses converts a list of links
func ProjectLinkResponses(links []models.ProjectLink) []ProjectLinkResponse {
	out := make([]ProjectLinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, NewProjectLinkResponse(l))
	}
	return out
}

// HelpDocumentRequest creates or edits a help document
type HelpDocumentRequest struct {
	ProjectID *uint  `json:"projectId"`
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body"`
	URL       string `json:"url" binding:"omitempty,url"`
}

// HelpDocumentResponse is the view of a help document
type HelpDocumentResponse struct {
	ID        uint      `json:"id"`
	ProjectID *uint     `json:"projectId,omitempty"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	URL       string    `json:"url,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewHelpDocumentResponse converts a help document into its view
func NewHelpDocumentResponse(d models.HelpDocument) HelpDocumentResponse {
	return HelpDocumentResponse{
		ID:        d.ID,
		ProjectID: d.ProjectID,
		Title:     d.Title,
		Body:      d.Body,
		URL:       d.URL,
		UpdatedAt: d.UpdatedAt,
	}
}

// HelpDocumentResponses converts a list of help documents
func HelpDocumentResponses(docs []models.HelpDocument) []HelpDocumentResponse {
	out := make([]HelpDocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, NewHelpDocumentResponse(d))
	}
	return out
}
