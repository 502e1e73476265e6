package notification

import (
	"context"
	"fmt"

	clientRepo "pushhub/database/repository/client"
	notificationRepo "pushhub/database/repository/notification"
	"pushhub/models"
	"pushhub/queue"
)

// SendRequest carries the client-provided content of one send.
type SendRequest struct {
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body" binding:"required"`
	ImageURL  string `json:"imageUrl"`
	TargetURL string `json:"targetUrl"`
}

// NotificationService validates send requests, creates the pending record
// and hands the fan-out to the background dispatcher. The caller only ever
// gets a queued acknowledgment; final outcome is read from the record.
type NotificationService interface {
	// Send validates the request, persists a pending record and enqueues
	// the dispatch. Returns the pending record.
	Send(ctx context.Context, clientID string, req SendRequest) (*models.Notification, error)
	// Get returns one record owned by the client.
	Get(ctx context.Context, clientID, id string) (*models.Notification, error)
	// List returns the client's records, newest first.
	List(ctx context.Context, clientID string) ([]models.Notification, error)
	// Delete removes a record owned by the client.
	Delete(ctx context.Context, clientID, id string) error
	// Stats aggregates delivery bookkeeping for the client.
	Stats(ctx context.Context, clientID string) (*models.NotificationStats, error)
}

// SubscriberCounter is the slice of the subscription service the send
// validation needs.
type SubscriberCounter interface {
	Count(ctx context.Context, clientID string) (int64, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo    notificationRepo.NotificationRepository
	Clients clientRepo.ClientRepository
	Counter SubscriberCounter
	// Enqueuer is nil when VAPID credentials are absent; sends are then
	// refused with ErrPushDisabled.
	Enqueuer queue.Enqueuer
}

func NewDefaultNotificationService(
	repo notificationRepo.NotificationRepository,
	clients clientRepo.ClientRepository,
	counter SubscriberCounter,
	enqueuer queue.Enqueuer,
) (*DefaultNotificationService, error) {
	if repo == nil || clients == nil || counter == nil {
		return nil, fmt.Errorf("notification service initialization error: one or more dependencies are nil")
	}
	return &DefaultNotificationService{
		Repo:     repo,
		Clients:  clients,
		Counter:  counter,
		Enqueuer: enqueuer,
	}, nil
}
