package client

import (
	"context"
	"fmt"

	clientRepo "pushhub/database/repository/client"
	"pushhub/models"
)

// ClientService manages tenant accounts (master-role operations).
type ClientService interface {
	Create(ctx context.Context, name, logoURL string) (*models.Client, error)
	Get(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
	Update(ctx context.Context, id, name, logoURL string) (*models.Client, error)
	SetStatus(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

// DefaultClientService is the production implementation.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}

func NewDefaultClientService(repo clientRepo.ClientRepository) (*DefaultClientService, error) {
	if repo == nil {
		return nil, fmt.Errorf("client service initialization error: repository is nil")
	}
	return &DefaultClientService{Repo: repo}, nil
}
