package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk-api/models"
	"github.com/projectdesk-api/utils"
)

// Context keys set by AuthMiddleware
const (
	ContextUserID   = "userId"
	ContextUserName = "userName"
	ContextRole     = "role"
)

// TokenAuthenticator resolves the user holding a bearer token
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, bool)
}

// AuthMiddleware rejects any request whose bearer token is not stored against a user.
// Every request is checked on its own; nothing is cached between calls.
func AuthMiddleware(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.ExtractBearerToken(c)

		user, ok := auth.Authenticate(c.Request.Context(), token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid Token",
			})
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserName, user.Name)
		c.Set(ContextRole, string(user.Role))
		c.Next()
	}
}
