package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/projectdesk-api/dto"
	"github.com/projectdesk-api/models"
)

// UserService handles business logic for users
type UserService struct {
	users UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// ListUsers retrieves all users that are not soft-deleted
func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.UserResponses(users), nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if isNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(*user)
	return &resp, nil
}

// UpdateUser applies the non-nil fields of req
func (s *UserService) UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if isNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.users.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, ErrEmailTaken
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		role := models.Role(strings.ToUpper(*req.Role))
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
		user.Role = role
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	resp := dto.NewUserResponse(*user)
	return &resp, nil
}

// DeleteUser soft-deletes a user. Their access requests drop out of the active list.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	return s.users.Delete(ctx, id)
}
