package dispatch

import (
	"context"
	"fmt"

	clientRepo "pushhub/database/repository/client"
	notificationRepo "pushhub/database/repository/notification"
	subscriptionRepo "pushhub/database/repository/subscription"
	"pushhub/models"
	"pushhub/services/push"
)

// Engine executes the fan-out send for one pending notification against
// one client's current subscription set. Dispatch never returns a result
// to the original request issuer; the notification record is the sole
// channel for observing the final outcome.
type Engine interface {
	Dispatch(ctx context.Context, clientID string, notif models.Notification)
}

// DefaultDispatchEngine is the production implementation.
type DefaultDispatchEngine struct {
	Subs      subscriptionRepo.SubscriptionRepository
	Notifs    notificationRepo.NotificationRepository
	Clients   clientRepo.ClientRepository
	Deliverer push.Deliverer
}

func NewDefaultDispatchEngine(
	subs subscriptionRepo.SubscriptionRepository,
	notifs notificationRepo.NotificationRepository,
	clients clientRepo.ClientRepository,
	deliverer push.Deliverer,
) (*DefaultDispatchEngine, error) {
	if subs == nil || notifs == nil || clients == nil || deliverer == nil {
		return nil, fmt.Errorf("dispatch engine initialization error: one or more dependencies are nil")
	}
	return &DefaultDispatchEngine{
		Subs:      subs,
		Notifs:    notifs,
		Clients:   clients,
		Deliverer: deliverer,
	}, nil
}
