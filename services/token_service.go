package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/projectdesk-api/dto"
	"github.com/projectdesk-api/models"
	"github.com/projectdesk-api/utils"
)

// TokenService mints bearer tokens and answers whether a presented token belongs to a user
type TokenService struct {
	secret          []byte
	users           UserRepository
	verifySignature bool
}

// NewTokenService creates a token service. With verifySignature set, tokens must
// also pass ValidateToken before the stored-token lookup is trusted.
func NewTokenService(secret string, users UserRepository, verifySignature bool) *TokenService {
	return &TokenService{
		secret:          []byte(secret),
		users:           users,
		verifySignature: verifySignature,
	}
}

// GenerateToken signs an HS256 token whose subject is the user's name
func (s *TokenService) GenerateToken(user models.User) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("JWT_SECRET not set in environment")
	}

	claims := dto.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.Name,
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies the signature of a token and returns its claims
func (s *TokenService) ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// Authenticate resolves the user whose stored token equals token.
// Unknown, empty and malformed tokens all yield ok == false.
func (s *TokenService) Authenticate(ctx context.Context, token string) (*models.User, bool) {
	if token == "" {
		return nil, false
	}

	user, err := s.users.FindByToken(ctx, token)
	if err != nil {
		if !isNotFound(err) {
			utils.Logger.WithError(err).Warn("Token lookup failed")
		}
		return nil, false
	}

	if s.verifySignature {
		claims, err := s.ValidateToken(token)
		if err != nil || claims.UserID != user.ID {
			return nil, false
		}
	}
	return user, true
}

// IsTokenTrue reports whether token is currently stored against some user
func (s *TokenService) IsTokenTrue(ctx context.Context, token string) bool {
	_, ok := s.Authenticate(ctx, token)
	return ok
}
