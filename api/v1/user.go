package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk-api/dto"
	"github.com/projectdesk-api/middleware"
	"github.com/projectdesk-api/services"
)

// UserController handles user administration endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// RegisterRoutes registers user routes; mutations require an admin
func (uc *UserController) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", uc.ListUsers)
		users.GET("/:id", uc.GetUser)
		users.PUT("/:id", middleware.AdminMiddleware(), uc.UpdateUser)
		users.DELETE("/:id", middleware.AdminMiddleware(), uc.DeleteUser)
	}
}

// ListUsers returns every live user
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to retrieve users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": users})
}

// GetUser returns one user
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := uc.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to retrieve user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}

// UpdateUser changes a user's profile or role
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data", err)
		return
	}
	user, err := uc.userService.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, "Failed to update user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}

// DeleteUser soft-deletes a user
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := uc.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to delete user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
	})
}
