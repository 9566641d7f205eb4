package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk-api/dto"
	"github.com/projectdesk-api/middleware"
	"github.com/projectdesk-api/services"
	"github.com/projectdesk-api/utils"
)

// AuthController handles registration, login and logout endpoints
type AuthController struct {
	authService *services.AuthService
	otpService  *services.OTPService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService, otpService *services.OTPService) *AuthController {
	return &AuthController{
		authService: authService,
		otpService:  otpService,
	}
}

// RegisterRoutes registers auth routes. Public routes go through limiter when it is set.
func (ac *AuthController) RegisterRoutes(router *gin.RouterGroup, gate gin.HandlerFunc, limiter *middleware.RateLimiter) {
	public := router.Group("")
	if limiter != nil {
		public.Use(limiter.Middleware())
	}
	{
		public.POST("/register", ac.Register)
		public.POST("/login", ac.Login)
		public.POST("/otp/request", ac.RequestOTP)
		public.POST("/otp/verify", ac.VerifyOTP)
	}

	router.POST("/logout/:id", gate, ac.Logout)
	router.GET("/me", gate, ac.GetCurrentUser)
}

// Register handles user registration
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	user, err := ac.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Registration failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login handles email authentication
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	resp, found, err := ac.authService.Login(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, "Authentication failed", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
		})
		return
	}

	ac.respondSession(c, resp)
}

// RequestOTP sends a one-time login code by SMS
func (ac *AuthController) RequestOTP(c *gin.Context) {
	var req dto.OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	found, err := ac.otpService.RequestOTP(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		respondError(c, "Failed to send login code", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login code sent",
	})
}

// VerifyOTP exchanges a one-time code for a token
func (ac *AuthController) VerifyOTP(c *gin.Context) {
	var req dto.OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	resp, ok, err := ac.otpService.VerifyOTP(c.Request.Context(), req.PhoneNumber, req.Code)
	if err != nil {
		respondError(c, "Authentication failed", err)
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid or expired code",
		})
		return
	}

	ac.respondSession(c, resp)
}

// respondSession sets the token cookie and returns the session body
func (ac *AuthController) respondSession(c *gin.Context, resp *dto.LoginResponse) {
	// Set token as HttpOnly cookie (expires in 24 hours)
	c.SetCookie(
		utils.AccessTokenCookie, // name
		resp.Token,              // value
		86400,                   // max age (24 hours in seconds)
		"/",                     // path
		"",                      // domain
		true,                    // secure (HTTPS only)
		true,                    // httpOnly (not accessible via JS)
	)

	// Also return token in response body for clients that prefer Bearer auth
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   resp,
	})
}

// GetCurrentUser returns the currently authenticated user's profile
func (ac *AuthController) GetCurrentUser(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
		})
		return
	}

	user, err := ac.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "Failed to retrieve user profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   user,
	})
}
