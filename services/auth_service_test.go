package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/projectdesk-api/dto"
	"github.com/projectdesk-api/models"
	"github.com/projectdesk-api/repositories/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T, verify bool) (*fake.Store, *TokenService, *AuthService) {
	t.Helper()
	store := fake.NewStore()
	tokens := NewTokenService(testSecret, store.Users(), verify)
	return store, tokens, NewAuthService(store.Users(), tokens)
}

func registerUser(t *testing.T, auth *AuthService, name, email string) dto.UserResponse {
	t.Helper()
	user, err := auth.Register(context.Background(), dto.RegisterRequest{
		Name:        name,
		Email:       email,
		PhoneNumber: "+15550100",
	})
	require.NoError(t, err)
	return *user
}

func TestGenerateToken_ClaimsRoundTrip(t *testing.T) {
	_, tokens, _ := newAuthFixture(t, false)

	signed, err := tokens.GenerateToken(models.User{ID: 7, Name: "alice", Email: "alice@example.com", Role: models.RoleProjectManager})
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "PROJECT_MANAGER", claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.Nil(t, claims.ExpiresAt)
}

func TestGenerateToken_UniquePerCall(t *testing.T) {
	_, tokens, _ := newAuthFixture(t, false)
	user := models.User{ID: 1, Name: "alice"}

	first, err := tokens.GenerateToken(user)
	require.NoError(t, err)
	second, err := tokens.GenerateToken(user)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateToken_RejectsOtherSecret(t *testing.T) {
	_, tokens, _ := newAuthFixture(t, false)
	other := NewTokenService("another-secret", nil, false)

	signed, err := other.GenerateToken(models.User{ID: 1, Name: "mallory"})
	require.NoError(t, err)

	_, err = tokens.ValidateToken(signed)
	assert.Error(t, err)
}

func TestIsTokenTrue(t *testing.T) {
	_, tokens, auth := newAuthFixture(t, false)
	ctx := context.Background()
	registerUser(t, auth, "alice", "alice@example.com")

	session, found, err := auth.Login(ctx, "alice@example.com")
	require.NoError(t, err)
	require.True(t, found)

	assert.True(t, tokens.IsTokenTrue(ctx, session.Token))
	assert.False(t, tokens.IsTokenTrue(ctx, ""))
	assert.False(t, tokens.IsTokenTrue(ctx, "not-a-token"))

	forged, err := NewTokenService("another-secret", nil, false).GenerateToken(models.User{ID: session.User.ID, Name: "alice"})
	require.NoError(t, err)
	assert.False(t, tokens.IsTokenTrue(ctx, forged))
}

func TestIsTokenTrue_NewLoginReplacesOldToken(t *testing.T) {
	_, tokens, auth := newAuthFixture(t, false)
	ctx := context.Background()
	registerUser(t, auth, "alice", "alice@example.com")

	first, _, err := auth.Login(ctx, "alice@example.com")
	require.NoError(t, err)
	second, _, err := auth.Login(ctx, "alice@example.com")
	require.NoError(t, err)

	assert.False(t, tokens.IsTokenTrue(ctx, first.Token))
	assert.True(t, tokens.IsTokenTrue(ctx, second.Token))
}

func TestIsTokenTrue_SignatureCheckIsOptIn(t *testing.T) {
	store, _, auth := newAuthFixture(t, false)
	ctx := context.Background()
	registered := registerUser(t, auth, "alice", "alice@example.com")

	// A stored value that is not a token signed with our secret
	user, err := store.Users().FindByID(ctx, registered.ID)
	require.NoError(t, err)
	unsigned := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"})
	stored, err := unsigned.SignedString([]byte("another-secret"))
	require.NoError(t, err)
	user.Token = &stored
	require.NoError(t, store.Users().Update(ctx, user))

	lenient := NewTokenService(testSecret, store.Users(), false)
	strict := NewTokenService(testSecret, store.Users(), true)

	assert.True(t, lenient.IsTokenTrue(ctx, stored))
	assert.False(t, strict.IsTokenTrue(ctx, stored))
}

func TestIsTokenTrue_StrictAcceptsIssuedToken(t *testing.T) {
	_, tokens, auth := newAuthFixture(t, true)
	ctx := context.Background()
	registerUser(t, auth, "alice", "alice@example.com")

	session, _, err := auth.Login(ctx, "alice@example.com")
	require.NoError(t, err)

	assert.True(t, tokens.IsTokenTrue(ctx, session.Token))
}

func TestRegister(t *testing.T) {
	_, _, auth := newAuthFixture(t, false)
	ctx := context.Background()

	user := registerUser(t, auth, "alice", "alice@example.com")
	assert.Equal(t, "USER", user.Role)

	_, err := auth.Register(ctx, dto.RegisterRequest{Name: "again", Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = auth.Register(ctx, dto.RegisterRequest{Name: "bob", Email: "bob@example.com", Role: "overlord"})
	assert.ErrorIs(t, err, ErrInvalidRole)

	pm, err := auth.Register(ctx, dto.RegisterRequest{Name: "carol", Email: "carol@example.com", Role: "project_manager"})
	require.NoError(t, err)
	assert.Equal(t, "PROJECT_MANAGER", pm.Role)
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, _, auth := newAuthFixture(t, false)

	resp, found, err := auth.Login(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, resp)
}

func TestLogout(t *testing.T) {
	store, tokens, auth := newAuthFixture(t, false)
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	auth.now = func() time.Time { return fixed }

	registered := registerUser(t, auth, "alice", "alice@example.com")
	session, _, err := auth.Login(ctx, "alice@example.com")
	require.NoError(t, err)

	result, err := auth.Logout(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, LogoutSuccess, result)
	assert.Equal(t, "User logged out successfully", result.Message())

	user, err := store.Users().FindByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.Nil(t, user.Token)
	require.NotNil(t, user.LastLogoutAt)
	assert.True(t, fixed.Equal(*user.LastLogoutAt))

	assert.False(t, tokens.IsTokenTrue(ctx, session.Token))
}

func TestLogout_UnknownUser(t *testing.T) {
	_, _, auth := newAuthFixture(t, false)

	result, err := auth.Logout(context.Background(), 404)

	require.NoError(t, err)
	assert.Equal(t, LogoutNotFound, result)
	assert.Equal(t, "User not found", result.Message())
}

func TestDeletedUserTokenStopsWorking(t *testing.T) {
	store, tokens, auth := newAuthFixture(t, false)
	ctx := context.Background()
	registered := registerUser(t, auth, "alice", "alice@example.com")
	session, _, err := auth.Login(ctx, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, NewUserService(store.Users()).DeleteUser(ctx, registered.ID))

	assert.False(t, tokens.IsTokenTrue(ctx, session.Token))
}
