package subscription

import (
	"context"
	"fmt"

	clientRepo "pushhub/database/repository/client"
	subscriptionRepo "pushhub/database/repository/subscription"
	"pushhub/models"

	"github.com/go-redis/redis/v8"
)

// SubscriptionService manages subscriber registrations for client tenants.
type SubscriptionService interface {
	// Register validates and stores a subscription; re-subscribing an
	// already registered (client, endpoint) pair updates the existing
	// record.
	Register(ctx context.Context, payload models.SubscriptionPayload) (*models.Subscription, error)
	// Unsubscribe removes the subscription matching (client, endpoint).
	Unsubscribe(ctx context.Context, clientID, endpoint string) error
	// List returns a client's current subscribers.
	List(ctx context.Context, clientID string) ([]models.Subscription, error)
	// Count returns a client's subscriber count, served from cache when
	// fresh.
	Count(ctx context.Context, clientID string) (int64, error)
	// Remove deletes one subscriber owned by the client (panel action).
	Remove(ctx context.Context, clientID, subscriptionID string) error
}

// DefaultSubscriptionService is the production implementation.
type DefaultSubscriptionService struct {
	Repo    subscriptionRepo.SubscriptionRepository
	Clients clientRepo.ClientRepository
	Cache   *redis.Client
}

func NewDefaultSubscriptionService(
	repo subscriptionRepo.SubscriptionRepository,
	clients clientRepo.ClientRepository,
	cache *redis.Client,
) (*DefaultSubscriptionService, error) {
	if repo == nil || clients == nil {
		return nil, fmt.Errorf("subscription service initialization error: one or more dependencies are nil")
	}
	return &DefaultSubscriptionService{Repo: repo, Clients: clients, Cache: cache}, nil
}
