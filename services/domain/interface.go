package domain

import (
	"context"
	"fmt"

	clientRepo "pushhub/database/repository/client"
	domainRepo "pushhub/database/repository/domain"
	"pushhub/models"
)

// DomainService manages a client's registered origins.
type DomainService interface {
	// Register validates the origin format and stores it for the client.
	Register(ctx context.Context, clientID, name string) (*models.Domain, error)
	// List returns the client's registered domains.
	List(ctx context.Context, clientID string) ([]models.Domain, error)
	// Delete removes a domain after verifying ownership.
	Delete(ctx context.Context, clientID, id string) error
}

// DefaultDomainService is the production implementation.
type DefaultDomainService struct {
	Repo    domainRepo.DomainRepository
	Clients clientRepo.ClientRepository
}

func NewDefaultDomainService(
	repo domainRepo.DomainRepository,
	clients clientRepo.ClientRepository,
) (*DefaultDomainService, error) {
	if repo == nil || clients == nil {
		return nil, fmt.Errorf("domain service initialization error: one or more dependencies are nil")
	}
	return &DefaultDomainService{Repo: repo, Clients: clients}, nil
}
