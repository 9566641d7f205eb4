package services

import (
	"errors"

	"gorm.io/gorm"
)

// Domain errors returned by the services and mapped to status codes by the API layer
var (
	ErrNotFound        = errors.New("record not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidLinkKind = errors.New("invalid link kind")

	ErrInvalidRepositoryURL = errors.New("invalid repository URL")
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
