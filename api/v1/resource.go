package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk-api/dto"
	"github.com/projectdesk-api/services"
)

// ResourceController handles repositories, links and help documents
type ResourceController struct {
	service *services.ResourceService
}

// NewResourceController creates a new resource controller
func NewResourceController(service *services.ResourceService) *ResourceController {
	return &ResourceController{service: service}
}

// RegisterRoutes registers resource routes
func (rc *ResourceController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("/:id/repositories", rc.ListRepositories)
		projects.POST("/:id/repositories", rc.AddRepository)
		projects.GET("/:id/links", rc.ListLinks)
		projects.POST("/:id/links", rc.AddLink)
	}

	repos := router.Group("/repositories")
	{
		repos.GET("/:id", rc.GetRepository)
		repos.PUT("/:id", rc.UpdateRepository)
		repos.DELETE("/:id", rc.DeleteRepository)
	}

	links := router.Group("/links")
	{
		links.PUT("/:id", rc.UpdateLink)
		links.DELETE("/:id", rc.DeleteLink)
	}

	docs := router.Group("/documents")
	{
		docs.GET("", rc.ListDocuments)
		docs.POST("", rc.CreateDocument)
		docs.GET("/:id", rc.GetDocument)
		docs.PUT("/:id", rc.UpdateDocument)
		docs.DELETE("/:id", rc.DeleteDocument)
	}
}

// ListRepositories lists a project's GitHub repositories
func (rc *ResourceController) ListRepositories(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	repos, err := rc.service.ListRepositories(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, "Failed to retrieve repositories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": repos})
}

// AddRepository attaches a GitHub repository to a project
func (rc *ResourceController) AddRepository(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.GitRepositoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}
	repo, err := rc.service.AddRepository(c.Request.Context(), projectID, req)
	if err != nil {
		respondError(c, "Failed to add repository", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": repo})
}

// GetRepository returns one repository record
func (rc *ResourceController) GetRepository(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	repo, err := rc.service.GetRepository(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to retrieve repository", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": repo})
}

// UpdateRepository edits a repository record
func (rc *ResourceController) UpdateRepository(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.GitRepositoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}
	repo, err := rc.service.UpdateRepository(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, "Failed to update repository", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": repo})
}

// DeleteRepository detaches a repository record
func (rc *ResourceController) DeleteRepository(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := rc.service.DeleteRepository(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to delete repository", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Repository deleted successfully"})
}

// ListLinks lists a project's links, filtered by ?kind=FIGMA|DRIVE
func (rc *ResourceController) ListLinks(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	links, err := rc.service.ListLinks(c.Request.Context(), projectID, c.Query("kind"))
	if err != nil {
		respondError(c, "Failed to retrieve links", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": links})
}

// AddLink attaches a Figma or Drive link to a project
func (rc *ResourceController) AddLink(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ProjectLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}
	link, err := rc.service.AddLink(c.Request.Context(), projectID, req)
	if err != nil {
		respondError(c, "Failed to add link", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": link})
}

// UpdateLink edits a link
func (rc *ResourceController) UpdateLink(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ProjectLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}
	link, err := rc.service.UpdateLink(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, "Failed to update link", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": link})
}

// DeleteLink removes a link
func (rc *ResourceController) DeleteLink(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := rc.service.DeleteLink(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to delete link", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Link deleted successfully"})
}

// ListDocuments lists help documents, optionally filtered by ?projectId=
func (rc *ResourceController) ListDocuments(c *gin.Context) {
	var projectID *uint
	if raw := c.Query("projectId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			badRequest(c, "Invalid projectId", err)
			return
		}
		pid := uint(id)
		projectID = &pid
	}
	docs, err := rc.service.ListDocuments(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, "Failed to retrieve documents", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": docs})
}

// GetDocument returns one help document
func (rc *ResourceController) GetDocument(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	doc, err := rc.service.GetDocument(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to retrieve document", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": doc})
}

// CreateDocument stores a help document
func (rc *ResourceController) CreateDocument(c *gin.Context) {
	var req dto.HelpDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}
	doc, err := rc.service.CreateDocument(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to create document", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": doc})
}

// UpdateDocument edits a help document
func (rc *ResourceController) UpdateDocument(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.HelpDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}
	doc, err := rc.service.UpdateDocument(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, "Failed to update document", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": doc})
}

// DeleteDocument removes a help document
func (rc *ResourceController) DeleteDocument(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := rc.service.DeleteDocument(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to delete document", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Document deleted successfully"})
}
