package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pushhub/models"
	"pushhub/utils"

	"go.uber.org/zap"
)

// Send validates the request, snapshots the subscriber count, persists the
// pending record and enqueues the dispatch. All rejections here happen
// before any record is persisted; a zero-subscriber client never produces
// a pending record.
func (s *DefaultNotificationService) Send(ctx context.Context, clientID string, req SendRequest) (*models.Notification, error) {
	if s.Enqueuer == nil {
		return nil, ErrPushDisabled
	}

	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Body)
	if len(title) > models.NotificationTitleMaxLen {
		return nil, ErrTitleTooLong
	}
	if len(body) > models.NotificationBodyMaxLen {
		return nil, ErrBodyTooLong
	}

	client, err := s.Clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("Send: %w", err)
	}
	if !client.Active {
		return nil, ErrClientInactive
	}

	count, err := s.Counter.Count(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("Send: failed to count subscribers: %w", err)
	}
	if count == 0 {
		return nil, ErrNoSubscribers
	}

	notif := &models.Notification{
		ClientID:       clientID,
		Title:          title,
		Body:           body,
		ImageURL:       req.ImageURL,
		TargetURL:      req.TargetURL,
		RecipientCount: int(count),
	}
	if _, err := s.Repo.Create(ctx, notif); err != nil {
		return nil, fmt.Errorf("Send: failed to create notification record: %w", err)
	}

	if err := s.Enqueuer.EnqueueDispatch(ctx, clientID, notif.ID); err != nil {
		// The record exists but the dispatch will never run; finalize it
		// as failed so the caller's poll surface is truthful.
		if markErr := s.Repo.MarkFailed(ctx, notif.ID, err.Error(), time.Now()); markErr != nil {
			utils.GetLogger().Error("Failed to record enqueue failure",
				zap.String("notificationId", notif.ID), zap.Error(markErr))
		}
		return nil, fmt.Errorf("Send: failed to enqueue dispatch: %w", err)
	}

	utils.GetLogger().Info("Notification queued",
		zap.String("notificationId", notif.ID),
		zap.String("clientId", clientID),
		zap.Int("recipients", notif.RecipientCount))
	return notif, nil
}

// Get returns one record after verifying ownership.
func (s *DefaultNotificationService) Get(ctx context.Context, clientID, id string) (*models.Notification, error) {
	notif, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notif.ClientID != clientID {
		return nil, ErrNotOwned
	}
	return notif, nil
}

// List returns the client's records, newest first.
func (s *DefaultNotificationService) List(ctx context.Context, clientID string) ([]models.Notification, error) {
	return s.Repo.GetAllByClientID(ctx, clientID)
}

// Delete removes a record owned by the client.
func (s *DefaultNotificationService) Delete(ctx context.Context, clientID, id string) error {
	if _, err := s.Get(ctx, clientID, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

// Stats aggregates delivery bookkeeping for the client.
func (s *DefaultNotificationService) Stats(ctx context.Context, clientID string) (*models.NotificationStats, error) {
	return s.Repo.StatsByClientID(ctx, clientID)
}
