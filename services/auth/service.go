package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pushhub/models"
	"pushhub/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an issued panel session token stays valid.
const TokenTTL = 24 * time.Hour

var (
	// ErrInvalidCredentials is returned on a failed login, without
	// distinguishing unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserInactive is returned when a deactivated account logs in.
	ErrUserInactive = errors.New("user account is inactive")
	// ErrInvalidRole is returned when creating a user with an unknown role.
	ErrInvalidRole = errors.New("role must be master or client")
)

// Login verifies credentials and issues a session token.
func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, user.ClientID, TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("Login: failed to sign token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, user.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("Login: failed to store session: %w", err)
	}
	s.cacheSession(ctx, tokenHash, user.ID)

	user.TokenHash = tokenHash
	return &LoginResult{Token: token, User: user}, nil
}

// Revoke invalidates the user's current session token.
func (s *DefaultAuthService) Revoke(ctx context.Context, userID string) error {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if s.AuthCache != nil && user.TokenHash != "" {
		if err := s.AuthCache.Del(ctx, utils.AuthCachePrefix+user.TokenHash).Err(); err != nil {
			utils.GetLogger().Warn("Failed to drop cached session", zap.Error(err))
		}
	}
	return s.Repo.SetTokenHash(ctx, userID, "")
}

// CreateUser registers a new panel account.
func (s *DefaultAuthService) CreateUser(ctx context.Context, email, password, role, clientID string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if role != models.RoleMaster && role != models.RoleClient {
		return nil, ErrInvalidRole
	}
	if role == models.RoleClient && clientID == "" {
		return nil, fmt.Errorf("client users require a clientId")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		ClientID:     clientID,
		Active:       true,
	}
	if _, err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// cacheSession stores tokenHash -> userID so the auth middleware can skip
// the database on the hot path.
func (s *DefaultAuthService) cacheSession(ctx context.Context, tokenHash, userID string) {
	if s.AuthCache == nil {
		return
	}
	key := utils.AuthCachePrefix + tokenHash
	if err := s.AuthCache.Set(ctx, key, userID, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache session", zap.Error(err))
	}
}
