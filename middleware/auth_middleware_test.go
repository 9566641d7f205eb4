package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk-api/models"
	"github.com/stretchr/testify/assert"
)

type staticAuthenticator map[string]models.User

func (s staticAuthenticator) Authenticate(_ context.Context, token string) (*models.User, bool) {
	u, ok := s[token]
	if !ok {
		return nil, false
	}
	return &u, true
}

func TestAuthMiddleware(t *testing.T) {
	auth := staticAuthenticator{"good": {ID: 9, Name: "alice", Role: models.RoleProjectManager}}

	var gotID any
	var gotRole string
	r := gin.New()
	r.GET("/", AuthMiddleware(auth), func(c *gin.Context) {
		gotID, _ = c.Get(ContextUserID)
		gotRole = c.GetString(ContextRole)
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodGet, "/", map[string]string{"Authorization": "Bearer good"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(9), gotID)
	assert.Equal(t, "PROJECT_MANAGER", gotRole)

	w = serve(r, http.MethodGet, "/", map[string]string{"Cookie": "access_token=good"})
	assert.Equal(t, http.StatusOK, w.Code, "cookie is accepted when no header is sent")

	w = serve(r, http.MethodGet, "/", map[string]string{"Authorization": "Bearer bad"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Invalid Token"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
