package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk-api/dto"
	"github.com/projectdesk-api/services"
)

// ProjectController handles project endpoints
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new project controller
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// RegisterRoutes registers project routes
func (pc *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", pc.ListProjects)
		projects.POST("", pc.CreateProject)
		projects.GET("/:id", pc.GetProject)
		projects.PUT("/:id", pc.UpdateProject)
		projects.DELETE("/:id", pc.DeleteProject)
		projects.POST("/:id/members", pc.AddMember)
		projects.DELETE("/:id/members/:userId", pc.RemoveMember)
	}
}

// ListProjects godoc
// @Summary List projects
// @Tags projects
// @Success 200 {array} dto.ProjectResponse
// @Router /projects [get]
func (pc *ProjectController) ListProjects(c *gin.Context) {
	projects, err := pc.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to retrieve projects", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   projects,
	})
}

// GetProject godoc
// @Summary Get a project with its members, repositories, links and documents
// @Tags projects
// @Param id path int true "Project ID"
// @Success 200 {object} dto.ProjectDetailResponse
// @Router /projects/{id} [get]
func (pc *ProjectController) GetProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := pc.projectService.GetProjectDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Project not found", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// CreateProject godoc
// @Summary Create a new project
// @Tags projects
// @Param project body dto.CreateProjectRequest true "Project Data"
// @Success 201 {object} dto.ProjectResponse
// @Router /projects [post]
func (pc *ProjectController) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	project, err := pc.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to create project", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   project,
	})
}

// UpdateProject godoc
// @Summary Update an existing project
// @Tags projects
// @Param id path int true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Project Data"
// @Success 200 {object} dto.ProjectResponse
// @Router /projects/{id} [put]
func (pc *ProjectController) UpdateProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	project, err := pc.projectService.UpdateProject(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, "Failed to update project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags projects
// @Param id path int true "Project ID"
// @Router /projects/{id} [delete]
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := pc.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to delete project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}

// AddMember adds a user to a project
func (pc *ProjectController) AddMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	if err := pc.projectService.AddMember(c.Request.Context(), id, req.UserID); err != nil {
		respondError(c, "Failed to add member", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Member added",
	})
}

// RemoveMember removes a user from a project
func (pc *ProjectController) RemoveMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	if err := pc.projectService.RemoveMember(c.Request.Context(), id, userID); err != nil {
		respondError(c, "Failed to remove member", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Member removed",
	})
}
