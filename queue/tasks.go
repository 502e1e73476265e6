package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"pushhub/config"

	"github.com/hibiken/asynq"
)

// TypeNotificationDispatch is the task type for a queued fan-out send.
const TypeNotificationDispatch = "notification:dispatch"

// DispatchTaskPayload identifies one queued dispatch.
type DispatchTaskPayload struct {
	ClientID       string `json:"clientId"`
	NotificationID string `json:"notificationId"`
}

// NewDispatchTask builds the asynq task for one notification. MaxRetry is
// zero: a finalized record is never re-opened by an automatic retry.
func NewDispatchTask(clientID, notificationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(DispatchTaskPayload{
		ClientID:       clientID,
		NotificationID: notificationID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dispatch task: %w", err)
	}
	return asynq.NewTask(TypeNotificationDispatch, payload, asynq.MaxRetry(0)), nil
}

// Enqueuer submits dispatch work to the background executor. The HTTP
// layer depends on this interface so send handlers stay testable.
type Enqueuer interface {
	EnqueueDispatch(ctx context.Context, clientID, notificationID string) error
}

// AsynqEnqueuer is the production Enqueuer backed by Redis.
type AsynqEnqueuer struct {
	client *asynq.Client
}

// NewAsynqEnqueuer builds the enqueuer from the shared Redis queue config.
func NewAsynqEnqueuer() *AsynqEnqueuer {
	return &AsynqEnqueuer{client: asynq.NewClient(redisOpt())}
}

// EnqueueDispatch queues one dispatch task.
func (e *AsynqEnqueuer) EnqueueDispatch(ctx context.Context, clientID, notificationID string) error {
	task, err := NewDispatchTask(clientID, notificationID)
	if err != nil {
		return err
	}
	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue dispatch: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (e *AsynqEnqueuer) Close() error {
	return e.client.Close()
}

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}
