package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/projectdesk-api/lib/notify"
	"github.com/projectdesk-api/lib/otpstore"
	"github.com/projectdesk-api/repositories/fake"
	"github.com/projectdesk-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	router *gin.Engine
	store  *fake.Store
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Found   *bool           `json:"found"`
	Data    json.RawMessage `json:"data"`
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := fake.NewStore()
	tokens := services.NewTokenService("test-secret", store.Users(), false)
	auth := services.NewAuthService(store.Users(), tokens)
	deps := Dependencies{
		Tokens:         tokens,
		Auth:           auth,
		OTP:            services.NewOTPService(store.Users(), otpstore.NewMemoryStore(), notify.LogSender{}, auth, time.Minute, 6),
		AccessRequests: services.NewAccessRequestService(store.AccessRequests(), store.Users(), store.Projects(), notify.LogMailer{}),
		Users:          services.NewUserService(store.Users()),
		Projects:       services.NewProjectService(store.Projects(), store.Users()),
		Resources:      services.NewResourceService(store.Projects(), store.GitRepositories(), store.Links(), store.Documents()),
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), deps)
	return &testAPI{router: router, store: store}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

// signup registers a user and logs them in, returning the user id and token
func (a *testAPI) signup(t *testing.T, name, role string) (uint, string) {
	t.Helper()
	email := name + "@example.com"
	w, _ := a.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": name, "email": email, "role": role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env := a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": email})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var session struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	return session.User.ID, session.Token
}

func TestGate_RejectsMissingAndForgedTokens(t *testing.T) {
	api := newTestAPI(t)
	api.signup(t, "alice", "")

	for _, token := range []string{"", "forged.token.value"} {
		w, env := api.do(t, http.MethodGet, "/api/v1/access-requests", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid Token", env.Message)
	}

	// Gated writes never reach the store
	w, _ := api.do(t, http.MethodPost, "/api/v1/access-requests", "forged", map[string]any{"pmName": "John", "userId": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, api.store.AccessRequestWrites())
}

func TestHealthIsPublic(t *testing.T) {
	api := newTestAPI(t)

	w, _ := api.do(t, http.MethodGet, "/api/v1/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccessRequestFlow(t *testing.T) {
	api := newTestAPI(t)
	userID, _ := api.signup(t, "u1", "")
	_, pmToken := api.signup(t, "john", "PROJECT_MANAGER")

	w, env := api.do(t, http.MethodPost, "/api/v1/projects", pmToken, map[string]string{"name": "P1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var project struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &project))

	w, env = api.do(t, http.MethodPost, "/api/v1/access-requests", pmToken, map[string]any{
		"pmName": "John", "userId": userID, "projectId": project.ID, "requestDescription": "frontend work",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID      uint `json:"id"`
		Updated bool `json:"updated"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.False(t, created.Updated)

	w, env = api.do(t, http.MethodPut, fmt.Sprintf("/api/v1/access-requests/%d/decision", created.ID), pmToken, map[string]bool{"allowed": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, env.Found)
	assert.True(t, *env.Found)
	var views []struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 1)
	assert.Equal(t, "Request for adding u1 has been granted", views[0].Message)
	assert.True(t, api.store.IsMember(project.ID, userID))

	w, env = api.do(t, http.MethodGet, "/api/v1/access-requests/pm/John/unread", pmToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &views))
	assert.Len(t, views, 1)

	w, _ = api.do(t, http.MethodPut, fmt.Sprintf("/api/v1/access-requests/%d/read", created.ID), pmToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = api.do(t, http.MethodGet, "/api/v1/access-requests/pm/John/unread", pmToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &views))
	assert.Empty(t, views)
}

func TestDecide_UnknownIDAnswersEmpty(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.signup(t, "john", "PROJECT_MANAGER")

	w, env := api.do(t, http.MethodPut, "/api/v1/access-requests/999/decision", token, map[string]bool{"allowed": false})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Found)
	assert.False(t, *env.Found)
	assert.JSONEq(t, `[]`, string(env.Data))
	assert.Zero(t, api.store.AccessRequestWrites())
}

func TestDecide_RequiresAllowed(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.signup(t, "john", "PROJECT_MANAGER")

	w, _ := api.do(t, http.MethodPut, "/api/v1/access-requests/1/decision", token, map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearAll_AdminOnly(t *testing.T) {
	api := newTestAPI(t)
	userID, userToken := api.signup(t, "u1", "")
	_, adminToken := api.signup(t, "root", "ADMIN")

	w, _ := api.do(t, http.MethodPost, "/api/v1/access-requests", userToken, map[string]any{"pmName": "John", "userId": userID})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = api.do(t, http.MethodDelete, "/api/v1/access-requests", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = api.do(t, http.MethodDelete, "/api/v1/access-requests", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := api.do(t, http.MethodGet, "/api/v1/access-requests", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestClearAll_StoreFailureIs500(t *testing.T) {
	api := newTestAPI(t)
	_, adminToken := api.signup(t, "root", "ADMIN")
	api.store.DeleteAllErr = fmt.Errorf("disk full")

	w, _ := api.do(t, http.MethodDelete, "/api/v1/access-requests", adminToken, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLogout(t *testing.T) {
	api := newTestAPI(t)
	aliceID, aliceToken := api.signup(t, "alice", "")
	bobID, bobToken := api.signup(t, "bob", "")

	w, _ := api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/auth/logout/%d", bobID), aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/auth/logout/%d", aliceID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User logged out successfully", env.Message)

	w, _ = api.do(t, http.MethodGet, "/api/v1/auth/me", aliceToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = api.do(t, http.MethodGet, "/api/v1/auth/me", bobToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogout_AdminUnknownUser(t *testing.T) {
	api := newTestAPI(t)
	_, adminToken := api.signup(t, "root", "ADMIN")

	w, env := api.do(t, http.MethodPost, "/api/v1/auth/logout/999", adminToken, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", env.Message)
}

func TestLogin_UnknownEmail(t *testing.T) {
	api := newTestAPI(t)

	w, _ := api.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "ghost@example.com"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	api := newTestAPI(t)
	api.signup(t, "alice", "")

	w, _ := api.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{"name": "x", "email": "alice@example.com"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProjectLinksKindFilter(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.signup(t, "john", "PROJECT_MANAGER")

	w, env := api.do(t, http.MethodPost, "/api/v1/projects", token, map[string]string{"name": "P1"})
	require.Equal(t, http.StatusCreated, w.Code)
	var project struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &project))

	base := fmt.Sprintf("/api/v1/projects/%d/links", project.ID)
	w, _ = api.do(t, http.MethodPost, base, token, map[string]string{"kind": "FIGMA", "url": "https://figma.com/file/a"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w, _ = api.do(t, http.MethodPost, base, token, map[string]string{"kind": "DRIVE", "url": "https://drive.google.com/a"})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = api.do(t, http.MethodPost, base, token, map[string]string{"kind": "DROPBOX", "url": "https://dropbox.com/a"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = api.do(t, http.MethodGet, base+"?kind=DRIVE", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var links []struct {
		Kind string `json:"kind"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &links))
	require.Len(t, links, 1)
	assert.Equal(t, "DRIVE", links[0].Kind)
}

func TestUserMutationsRequireAdmin(t *testing.T) {
	api := newTestAPI(t)
	aliceID, aliceToken := api.signup(t, "alice", "")
	_, adminToken := api.signup(t, "root", "ADMIN")

	path := fmt.Sprintf("/api/v1/users/%d", aliceID)
	w, _ := api.do(t, http.MethodDelete, path, aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = api.do(t, http.MethodDelete, path, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// a deleted user's token no longer passes the gate
	w, _ = api.do(t, http.MethodGet, "/api/v1/users", aliceToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
