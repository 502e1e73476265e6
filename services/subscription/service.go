package subscription

import (
	"context"
	"fmt"
	"strconv"

	"pushhub/models"
	"pushhub/utils"

	"go.uber.org/zap"
)

// Register validates the wire payload, checks the owning client is active
// and upserts the subscription keyed by (clientId, endpoint).
func (s *DefaultSubscriptionService) Register(ctx context.Context, payload models.SubscriptionPayload) (*models.Subscription, error) {
	if payload.Endpoint == "" || payload.Keys.P256dh == "" || payload.Keys.Auth == "" {
		return nil, ErrInvalidPayload
	}

	client, err := s.Clients.GetByID(ctx, payload.ClientID)
	if err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	if !client.Active {
		return nil, ErrClientInactive
	}

	sub := &models.Subscription{
		ClientID:  payload.ClientID,
		Endpoint:  payload.Endpoint,
		P256dh:    payload.Keys.P256dh,
		Auth:      payload.Keys.Auth,
		Domain:    payload.Domain,
		UserAgent: payload.UserAgent,
	}
	stored, err := s.Repo.Upsert(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("Register: failed to store subscription: %w", err)
	}

	s.invalidateCount(ctx, payload.ClientID)
	return stored, nil
}

// Unsubscribe removes the subscription matching (client, endpoint).
func (s *DefaultSubscriptionService) Unsubscribe(ctx context.Context, clientID, endpoint string) error {
	if err := s.Repo.DeleteByEndpoint(ctx, clientID, endpoint); err != nil {
		return err
	}
	s.invalidateCount(ctx, clientID)
	return nil
}

// List returns a client's current subscribers.
func (s *DefaultSubscriptionService) List(ctx context.Context, clientID string) ([]models.Subscription, error) {
	return s.Repo.GetAllByClientID(ctx, clientID)
}

// Count serves the subscriber count from the Redis cache when available
// and falls back to the store. The count gates sends, so staleness is
// bounded by SubscriberCountTTL and writes invalidate eagerly.
func (s *DefaultSubscriptionService) Count(ctx context.Context, clientID string) (int64, error) {
	key := utils.SubscriberCountPrefix + clientID

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			if n, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return n, nil
			}
		}
	}

	n, err := s.Repo.CountByClientID(ctx, clientID)
	if err != nil {
		return 0, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, strconv.FormatInt(n, 10), utils.SubscriberCountTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to cache subscriber count",
				zap.String("clientId", clientID), zap.Error(err))
		}
	}
	return n, nil
}

// Remove deletes one subscriber owned by the client.
func (s *DefaultSubscriptionService) Remove(ctx context.Context, clientID, subscriptionID string) error {
	if err := s.Repo.DeleteByID(ctx, clientID, subscriptionID); err != nil {
		return err
	}
	s.invalidateCount(ctx, clientID)
	return nil
}

func (s *DefaultSubscriptionService) invalidateCount(ctx context.Context, clientID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.SubscriberCountPrefix+clientID).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate subscriber count cache",
			zap.String("clientId", clientID), zap.Error(err))
	}
}
