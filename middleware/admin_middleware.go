package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk-api/models"
)

// AdminMiddleware creates a middleware that ensures the user has admin role
// This middleware should be used after AuthMiddleware
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get role from context (set by AuthMiddleware)
		role, exists := c.Get(ContextRole)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		if roleStr, ok := role.(string); !ok || roleStr != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Admin privileges required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
