package client

import (
	"context"
	"errors"
	"strings"

	"pushhub/models"
)

// ErrEmptyName is returned when a client is created or renamed without a name.
var ErrEmptyName = errors.New("client name must not be empty")

// Create registers a new tenant. New clients start active.
func (s *DefaultClientService) Create(ctx context.Context, name, logoURL string) (*models.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	c := &models.Client{
		Name:    name,
		LogoURL: logoURL,
		Active:  true,
	}
	if _, err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns one tenant.
func (s *DefaultClientService) Get(ctx context.Context, id string) (*models.Client, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns all tenants.
func (s *DefaultClientService) List(ctx context.Context) ([]models.Client, error) {
	return s.Repo.GetAll(ctx)
}

// Update renames/rebrands a tenant.
func (s *DefaultClientService) Update(ctx context.Context, id, name, logoURL string) (*models.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	c := &models.Client{ID: id, Name: name, LogoURL: logoURL}
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

// SetStatus activates or deactivates a tenant. Deactivation gates new
// subscriptions, domains and sends but leaves existing data in place.
func (s *DefaultClientService) SetStatus(ctx context.Context, id string, active bool) error {
	return s.Repo.SetActive(ctx, id, active)
}

// Delete removes a tenant record.
func (s *DefaultClientService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
