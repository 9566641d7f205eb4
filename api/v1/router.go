package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/projectdesk-api/middleware"
	"github.com/projectdesk-api/services"
)

// Dependencies bundles the services the v1 handlers call
type Dependencies struct {
	Tokens         *services.TokenService
	Auth           *services.AuthService
	OTP            *services.OTPService
	AccessRequests *services.AccessRequestService
	Users          *services.UserService
	Projects       *services.ProjectService
	Resources      *services.ResourceService
	RateLimiter    *middleware.RateLimiter
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, deps Dependencies) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	gate := middleware.AuthMiddleware(deps.Tokens)

	// Auth endpoints
	authController := NewAuthController(deps.Auth, deps.OTP)
	authController.RegisterRoutes(router.Group("/auth"), gate, deps.RateLimiter)

	// Everything below requires a valid token
	authRouter := router.Group("")
	authRouter.Use(gate)

	NewAccessRequestController(deps.AccessRequests).RegisterRoutes(authRouter)
	NewUserController(deps.Users).RegisterRoutes(authRouter)
	NewProjectController(deps.Projects).RegisterRoutes(authRouter)
	NewResourceController(deps.Resources).RegisterRoutes(authRouter)
}
