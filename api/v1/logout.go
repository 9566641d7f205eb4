package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk-api/models"
	"github.com/projectdesk-api/services"
	"github.com/projectdesk-api/utils"
)

// Logout handles user logout. Users may log themselves out; admins may log out anyone.
func (ac *AuthController) Logout(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	callerID, role, _ := currentUser(c)
	if callerID != id && role != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Cannot log out another user",
		})
		return
	}

	result, err := ac.authService.Logout(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Logout failed", err)
		return
	}

	if result == services.LogoutNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": result.Message(),
		})
		return
	}

	// Clear the cookie by setting max-age to -1 (expired)
	c.SetCookie(
		utils.AccessTokenCookie, // name
		"",                      // value (empty)
		-1,                      // max age (expired)
		"/",                     // path
		"",                      // domain
		true,                    // secure (HTTPS only)
		true,                    // httpOnly (not accessible via JS)
	)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": result.Message(),
	})
}
