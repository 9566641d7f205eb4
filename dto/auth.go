package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/projectdesk-api/models"
)

// TokenClaims represents our custom JWT claims. Subject carries the username.
type TokenClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest represents an email login
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RegisterRequest represents registration data
type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

// OTPRequest asks for a one-time login code by SMS
type OTPRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// OTPVerifyRequest exchanges a one-time code for a token
type OTPVerifyRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

// UserResponse is the public view of a user; it never carries the stored token
type UserResponse struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phoneNumber"`
	Role         string     `json:"role"`
	LastLogoutAt *time.Time `json:"lastLogoutAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// LoginResponse represents the response after authentication
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse converts a user entity into its public view
func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PhoneNumber:  u.PhoneNumber,
		Role:         string(u.Role),
		LastLogoutAt: u.LastLogoutAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// UserResponses converts a list of users
func UserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// UpdateUserRequest carries the user fields an admin may change; nil leaves a field untouched
type UpdateUserRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber"`
	Role        *string `json:"role"`
}
