package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pushhub/models"
)

var (
	// ErrInvalidDomain is returned when the name is not a hostname[:port],
	// "localhost" or an IP address.
	ErrInvalidDomain = errors.New("invalid domain: expected hostname[:port], localhost or IP address")
	// ErrClientInactive is returned when the owning client is deactivated.
	ErrClientInactive = errors.New("client account is inactive")
	// ErrNotOwned is returned when a domain belongs to a different client.
	ErrNotOwned = errors.New("domain does not belong to this client")
)

// Register validates the origin format, checks the owning client is
// active and stores the domain. Uniqueness per (client, name) is enforced
// by the store.
func (s *DefaultDomainService) Register(ctx context.Context, clientID, name string) (*models.Domain, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !ValidDomainName(name) {
		return nil, ErrInvalidDomain
	}

	client, err := s.Clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	if !client.Active {
		return nil, ErrClientInactive
	}

	d := &models.Domain{ClientID: clientID, Name: name}
	if _, err := s.Repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// List returns the client's registered domains.
func (s *DefaultDomainService) List(ctx context.Context, clientID string) ([]models.Domain, error) {
	return s.Repo.GetAllByClientID(ctx, clientID)
}

// Delete removes a domain after verifying ownership.
func (s *DefaultDomainService) Delete(ctx context.Context, clientID, id string) error {
	d, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d.ClientID != clientID {
		return ErrNotOwned
	}
	return s.Repo.Delete(ctx, id)
}
