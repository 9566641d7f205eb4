package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk-api/dto"
	"github.com/projectdesk-api/middleware"
	"github.com/projectdesk-api/services"
)

// AccessRequestController handles access request endpoints
type AccessRequestController struct {
	service *services.AccessRequestService
}

// NewAccessRequestController creates a new access request controller
func NewAccessRequestController(service *services.AccessRequestService) *AccessRequestController {
	return &AccessRequestController{service: service}
}

// RegisterRoutes registers access request routes
func (ac *AccessRequestController) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/access-requests")
	{
		requests.POST("", ac.Create)
		requests.GET("", ac.ListAll)
		requests.GET("/active", ac.ListActive)
		requests.PUT("/:id/decision", ac.Decide)
		requests.PUT("/:id/read", ac.MarkRead)
		requests.GET("/pm/:pmName", ac.ListForPM)
		requests.GET("/pm/:pmName/unread", ac.ListUnreadForPM)
		requests.DELETE("", middleware.AdminMiddleware(), ac.ClearAll)
	}
}

// Create godoc
// @Summary Submit an access request
// @Tags access-requests
// @Param request body dto.CreateAccessRequestRequest true "Request Data"
// @Success 201 {object} dto.AccessRequestSummary
// @Router /access-requests [post]
func (ac *AccessRequestController) Create(c *gin.Context) {
	var req dto.CreateAccessRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	created, err := ac.service.CreateRequest(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to create access request", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   created,
	})
}

// ListAll godoc
// @Summary List every access request
// @Tags access-requests
// @Success 200 {array} dto.AccessRequestSummary
// @Router /access-requests [get]
func (ac *AccessRequestController) ListAll(c *gin.Context) {
	requests, err := ac.service.GetAllRequests(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to retrieve access requests", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   requests,
	})
}

// ListActive godoc
// @Summary List active access requests
// @Tags access-requests
// @Success 200 {array} dto.AccessRequestSummary
// @Router /access-requests/active [get]
func (ac *AccessRequestController) ListActive(c *gin.Context) {
	requests, err := ac.service.GetAllActiveRequests(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to retrieve active access requests", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   requests,
	})
}

// Decide godoc
// @Summary Grant or deny an access request
// @Description Unknown ids answer 200 with an empty list and found=false
// @Tags access-requests
// @Param id path int true "Access request ID"
// @Param decision body dto.DecideAccessRequestRequest true "Decision"
// @Success 200 {array} dto.AccessRequestResponse
// @Router /access-requests/{id}/decision [put]
func (ac *AccessRequestController) Decide(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.DecideAccessRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}

	views, found, err := ac.service.Decide(c.Request.Context(), id, *req.Allowed)
	if err != nil {
		respondError(c, "Failed to decide access request", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"found":  found,
		"data":   views,
	})
}

// MarkRead godoc
// @Summary Mark a decided request as read by its project manager
// @Tags access-requests
// @Param id path int true "Access request ID"
// @Router /access-requests/{id}/read [put]
func (ac *AccessRequestController) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	found, err := ac.service.MarkNotified(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to mark access request as read", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"found":   found,
		"message": "Notification acknowledged",
	})
}

// ListForPM godoc
// @Summary List all requests of a project manager
// @Tags access-requests
// @Param pmName path string true "Project manager name"
// @Success 200 {array} dto.AccessRequestResponse
// @Router /access-requests/pm/{pmName} [get]
func (ac *AccessRequestController) ListForPM(c *gin.Context) {
	views, err := ac.service.GetPMRequests(c.Request.Context(), c.Param("pmName"))
	if err != nil {
		respondError(c, "Failed to retrieve access requests", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   views,
	})
}

// ListUnreadForPM godoc
// @Summary List decided requests a project manager has not read
// @Tags access-requests
// @Param pmName path string true "Project manager name"
// @Success 200 {array} dto.AccessRequestResponse
// @Router /access-requests/pm/{pmName}/unread [get]
func (ac *AccessRequestController) ListUnreadForPM(c *gin.Context) {
	views, err := ac.service.GetPMUnreadRequests(c.Request.Context(), c.Param("pmName"))
	if err != nil {
		respondError(c, "Failed to retrieve unread access requests", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   views,
	})
}

// ClearAll godoc
// @Summary Delete every access request (admin only)
// @Tags access-requests
// @Router /access-requests [delete]
func (ac *AccessRequestController) ClearAll(c *gin.Context) {
	if err := ac.service.ClearAllNotifications(c.Request.Context()); err != nil {
		respondError(c, "Failed to clear access requests", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "All access requests cleared",
	})
}
