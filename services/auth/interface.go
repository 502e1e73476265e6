package auth

import (
	"context"
	"fmt"

	userRepo "pushhub/database/repository/user"
	"pushhub/models"

	"github.com/go-redis/redis/v8"
)

// LoginResult carries the issued token and the authenticated user.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService manages panel account sessions.
type AuthService interface {
	// Login verifies credentials and issues a JWT; the token hash is
	// stored on the user record and cached for middleware lookups.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Revoke invalidates the user's current session token.
	Revoke(ctx context.Context, userID string) error
	// CreateUser registers a new panel account (master-role operation).
	CreateUser(ctx context.Context, email, password, role, clientID string) (*models.User, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}

func NewDefaultAuthService(repo userRepo.UserRepository, authCache *redis.Client) (*DefaultAuthService, error) {
	if repo == nil {
		return nil, fmt.Errorf("auth service initialization error: repository is nil")
	}
	return &DefaultAuthService{Repo: repo, AuthCache: authCache}, nil
}
