package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/projectdesk-api/dto"
	"github.com/projectdesk-api/models"
	"github.com/projectdesk-api/utils"
)

// LogoutResult tells the caller what a logout did
type LogoutResult int

const (
	LogoutSuccess LogoutResult = iota
	LogoutNotFound
)

// Message renders the result for API responses
func (r LogoutResult) Message() string {
	if r == LogoutSuccess {
		return "User logged out successfully"
	}
	return "User not found"
}

// AuthService handles registration, login and logout
type AuthService struct {
	users  UserRepository
	tokens *TokenService
	now    func() time.Time
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens, now: time.Now}
}

// Register creates a new user account. An empty role defaults to USER.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	role := models.RoleUser
	if req.Role != "" {
		role = models.Role(strings.ToUpper(req.Role))
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        role,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	utils.Logger.WithField("userId", user.ID).Info("User registered")
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Login issues a token for the user with the given email.
// found is false when no live user has that email.
func (s *AuthService) Login(ctx context.Context, email string) (*dto.LoginResponse, bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if isNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find user by email: %w", err)
	}

	resp, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, true, err
	}
	return resp, true, nil
}

// issueSession mints a token and stores it on the user record
func (s *AuthService) issueSession(ctx context.Context, user *models.User) (*dto.LoginResponse, error) {
	token, err := s.tokens.GenerateToken(*user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	user.Token = &token
	user.UpdatedAt = s.now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}

	utils.Logger.WithField("userId", user.ID).Info("User logged in")
	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(*user),
	}, nil
}

// Logout stamps the logout time and revokes the stored token
func (s *AuthService) Logout(ctx context.Context, userID uint) (LogoutResult, error) {
	user, err := s.users.FindByID(ctx, userID)
	if isNotFound(err) {
		return LogoutNotFound, nil
	}
	if err != nil {
		return LogoutNotFound, fmt.Errorf("find user: %w", err)
	}

	now := s.now()
	user.LastLogoutAt = &now
	user.Token = nil
	if err := s.users.Update(ctx, user); err != nil {
		return LogoutNotFound, fmt.Errorf("store logout: %w", err)
	}

	utils.Logger.WithField("userId", user.ID).Info("User logged out")
	return LogoutSuccess, nil
}

// CurrentUser returns the view of an authenticated user
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if isNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(*user)
	return &resp, nil
}
