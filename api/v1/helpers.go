package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk-api/lib/notify"
	"github.com/projectdesk-api/middleware"
	"github.com/projectdesk-api/services"
	"github.com/projectdesk-api/utils"
)

// respondError maps service errors to status codes
func respondError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidLinkKind),
		errors.Is(err, services.ErrInvalidRepositoryURL):
		status = http.StatusBadRequest
	case errors.Is(err, notify.ErrExternalServiceFailure):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		utils.Logger.WithError(err).Error(message)
	}
	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}

// badRequest answers 400 for malformed input
func badRequest(c *gin.Context, message string, err error) {
	body := gin.H{
		"status":  "error",
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}

// parseID reads a numeric path parameter, answering 400 when it is malformed
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "Invalid "+name, err)
		return 0, false
	}
	return uint(id), true
}

// currentUser returns the identity AuthMiddleware placed on the context
func currentUser(c *gin.Context) (uint, string, bool) {
	idValue, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return 0, "", false
	}
	id, ok := idValue.(uint)
	if !ok {
		return 0, "", false
	}
	role := c.GetString(middleware.ContextRole)
	return id, role, true
}
